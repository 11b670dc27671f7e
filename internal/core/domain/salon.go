package domain

import "strings"

// swagger:model domain.Salon
type Salon struct {
	ID       int64  `json:"id"`
	Name     string `json:"name" validate:"required,max=100"`
	Location string `json:"location" validate:"required,max=200"`
	Cars     []*Car `json:"cars,omitempty"`
}

type SalonPatch struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Location *string `json:"location,omitempty" validate:"omitempty,min=1,max=200"`
}

func (p *SalonPatch) Normalize() {
	trimPtr(p.Name)
	trimPtr(p.Location)
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
