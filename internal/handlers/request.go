package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/harentsoaR/pet24-api/internal/models"
)

// number decodes a JSON number or a numeric string. null and blank strings
// leave it unset; any other value sets it without making it valid.
type number struct {
	Set   bool
	Valid bool
	Value float64
}

func (n *number) UnmarshalJSON(data []byte) error {
	*n = number{}
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = number{Set: true, Valid: true, Value: f}
		return nil
	}

	n.Set = true
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		n.Set = false
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		n.Valid = true
		n.Value = f
	}
	return nil
}

// Ptr returns the value when it is set and valid.
func (n number) Ptr() *float64 {
	if !n.Set || !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// highlights accepts either a list of strings or one string with an item per
// line.
type highlights struct {
	Set   bool
	Items []string
}

func (h *highlights) UnmarshalJSON(data []byte) error {
	*h = highlights{}
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		h.Set = true
		h.Items = list
		if h.Items == nil {
			h.Items = []string{}
		}
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return errors.New("highlights must be a list or a string")
	}
	h.Set = true
	h.Items = []string{}
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			h.Items = append(h.Items, line)
		}
	}
	return nil
}

type field struct {
	name  string
	value *string
}

// missingField returns the name of the first field that is absent or blank.
func missingField(fields ...field) string {
	for _, f := range fields {
		if f.value == nil || strings.TrimSpace(*f.value) == "" {
			return f.name
		}
	}
	return ""
}

// blankField returns the name of the first field that is present but blank.
// Absent fields are left alone by partial updates.
func blankField(fields ...field) string {
	for _, f := range fields {
		if f.value != nil && strings.TrimSpace(*f.value) == "" {
			return f.name
		}
	}
	return ""
}

func requiredMessage(name string) string {
	return fmt.Sprintf("فیلد %s الزامی است", name)
}

// trimmed returns the trimmed value, or "" for nil.
func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// trimmedPtr keeps nil as nil.
func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// requestValidator wraps validator/v10 with the catalog's own rules.
type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	v := validator.New()
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		id := models.ProductCategoryID(fl.Field().String())
		for _, c := range models.ProductCategories {
			if c.ID == id {
				return true
			}
		}
		return false
	})
	return &requestValidator{validate: v}
}

func (rv *requestValidator) Category(id string) bool {
	return rv.validate.Var(id, "required,category") == nil
}

func (rv *requestValidator) Email(email string) bool {
	return rv.validate.Var(email, "required,email") == nil
}
