package glossary

import (
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Category classifies a term. The set is closed: ParseCategory rejects
// anything outside it, so a typo in a definition list fails at load time
// instead of producing an unreachable group.
type Category string

const (
	CategoryProtocol Category = "protocol"
	CategoryNetwork  Category = "network"
	CategorySecurity Category = "security"
	CategoryWeb      Category = "web"
	CategoryEmail    Category = "email"
	CategoryGeneral  Category = "general"
)

// ErrUnknownCategory is returned for category values outside the closed set.
var ErrUnknownCategory = errors.New("unknown term category")

// AllCategories lists every category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryProtocol,
		CategoryNetwork,
		CategorySecurity,
		CategoryWeb,
		CategoryEmail,
		CategoryGeneral,
	}
}

// ParseCategory converts s into a Category.
func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case CategoryProtocol, CategoryNetwork, CategorySecurity, CategoryWeb, CategoryEmail, CategoryGeneral:
		return c, nil
	default:
		return "", errors.WithHint(
			errors.Wrapf(ErrUnknownCategory, "%q", s),
			"valid categories: protocol, network, security, web, email, general",
		)
	}
}

// Valid reports whether c belongs to the closed set.
func (c Category) Valid() bool {
	_, err := ParseCategory(string(c))
	return err == nil
}

func (c Category) String() string { return string(c) }

// Label is the heading shown for the category in listings.
func (c Category) Label() string {
	switch c {
	case CategoryProtocol:
		return "Protocols"
	case CategoryNetwork:
		return "Networking"
	case CategorySecurity:
		return "Security"
	case CategoryWeb:
		return "Web"
	case CategoryEmail:
		return "Email"
	case CategoryGeneral:
		return "General"
	}
	return string(c)
}

// UnmarshalYAML validates the category while decoding a definition list.
func (c *Category) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return errors.Wrapf(err, "line %d", value.Line)
	}
	*c = parsed
	return nil
}
