package tags

// Controller implements the controlled-component contract for a facet
// filter: the view owns the selection and passes it in; Toggle and Clear
// compute the next value and hand it to OnChange. The controller does not
// keep the result. The view stores it and calls SetValue on its next
// update.
type Controller struct {
	value    Selection
	onChange func(Selection)
}

// NewController wraps the view's current selection. onChange may be nil.
func NewController(value Selection, onChange func(Selection)) *Controller {
	return &Controller{value: value, onChange: onChange}
}

// Value returns the selection the view last passed in.
func (c *Controller) Value() Selection {
	return c.value
}

// SetValue replaces the selection after the view has stored a new one.
func (c *Controller) SetValue(value Selection) {
	c.value = value
}

// Toggle computes Toggle(Value(), id), reports it through OnChange and
// returns it.
func (c *Controller) Toggle(id string) Selection {
	return c.emit(Toggle(c.value, id))
}

// Clear computes the empty selection, reports it and returns it.
func (c *Controller) Clear() Selection {
	return c.emit(Clear(c.value))
}

func (c *Controller) emit(next Selection) Selection {
	if c.onChange != nil {
		c.onChange(next)
	}
	return next
}
