package clientapimodels

import (
	"github.com/pkg/errors"
	dbmodels "wfp-backend/models/db"
)

type ClientData struct {
	Name         string `json:"name"`
	Industry     string `json:"industry"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	IsActive     bool   `json:"is_active"`
	IsInternal   bool   `json:"is_internal"`
}

func (c ClientData) Validate() error {
	if c.Name == "" {
		return errors.New("client name is required")
	}
	return nil
}

type ClientView struct {
	ClientData
	ID string `json:"id"`
}

type ClientFind struct {
	Name       string `json:"name"`
	OnlyActive bool   `json:"only_active"`
}

func ClientConvert(rec dbmodels.Client) ClientView {
	return ClientView{
		ClientData: ClientData{
			Name:         rec.Name,
			Industry:     rec.Industry,
			ContactName:  rec.ContactName,
			ContactEmail: rec.ContactEmail,
			IsActive:     rec.IsActive,
			IsInternal:   rec.IsInternal,
		},
		ID: rec.ID,
	}
}
