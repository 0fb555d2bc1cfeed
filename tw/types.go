package tw

import "github.com/olekukonko/errors" // Custom error handling library

// Validate checks if the Position is one of the allowed values.
func (pos Position) Validate() error {
	switch pos {
	case Header, Row:
		return nil
	}
	return errors.New("invalid position")
}

// Validate checks if the Align is one of the allowed values.
func (a Align) Validate() error {
	switch a {
	case AlignLeft, AlignRight, AlignCenter, AlignJustify:
		return nil
	}
	return errors.New("invalid align")
}

// Validate checks if the VAlign is one of the allowed values.
func (v VAlign) Validate() error {
	switch v {
	case VAlignTop, VAlignMiddle, VAlignBottom:
		return nil
	}
	return errors.New("invalid valign")
}
