package client

import (
	"regexp"
	"strings"
	"time"

	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BusinessType represents the legal structure of a client business
type BusinessType string

const (
	BusinessTypeIndividual         BusinessType = "individual"
	BusinessTypeLimited            BusinessType = "limited"
	BusinessTypeLLP                BusinessType = "llp"
	BusinessTypePartnership        BusinessType = "partnership"
	BusinessTypeLimitedPartnership BusinessType = "limited_partnership"
)

// IsValid checks if the type is a valid BusinessType
func (t BusinessType) IsValid() bool {
	switch t {
	case BusinessTypeIndividual, BusinessTypeLimited, BusinessTypeLLP,
		BusinessTypePartnership, BusinessTypeLimitedPartnership:
		return true
	}
	return false
}

// String returns the string representation of BusinessType
func (t BusinessType) String() string {
	return string(t)
}

// Address holds the client's registered business address
type Address struct {
	Building string `gorm:"type:varchar(200)"`
	Street   string `gorm:"type:varchar(200)"`
	City     string `gorm:"type:varchar(100)"`
	State    string `gorm:"type:varchar(100)"`
	PinCode  string `gorm:"type:varchar(20)"`
	Country  string `gorm:"type:varchar(100)"`
}

var pinCodeRe = regexp.MustCompile(`^[A-Za-z0-9\s\-]*$`)

// Validate checks address field constraints
func (a Address) Validate() error {
	for _, f := range []struct {
		value string
		max   int
		name  string
	}{
		{a.Building, 200, "Building"},
		{a.Street, 200, "Street"},
		{a.City, 100, "City"},
		{a.State, 100, "State"},
		{a.Country, 100, "Country"},
	} {
		if len(f.value) > f.max {
			return shared.NewDomainError("INVALID_ADDRESS", f.name+" is too long")
		}
	}
	if len(a.PinCode) > 20 || !pinCodeRe.MatchString(a.PinCode) {
		return shared.NewDomainError("INVALID_ADDRESS", "Invalid pin code")
	}
	return nil
}

// Client represents a business the organization works with.
// It is the aggregate root for client-related operations.
type Client struct {
	shared.OwnedAggregateRoot
	Code          string               `gorm:"type:varchar(20);not null;uniqueIndex"`
	BusinessName  string               `gorm:"type:varchar(200);not null;index"`
	BusinessType  BusinessType         `gorm:"type:varchar(30);not null"`
	Address       Address              `gorm:"embedded;embeddedPrefix:address_"`
	DeletionState shared.DeletionState `gorm:"type:varchar(10);not null;default:'active';index"`
}

// TableName returns the table name for GORM
func (Client) TableName() string {
	return "clients"
}

// NewClient creates a new client. The code comes from the sequence
// allocator and is immutable once assigned.
func NewClient(code, businessName string, businessType BusinessType, address Address, createdBy uuid.UUID, creatorName string) (*Client, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Client code cannot be empty")
	}
	if err := validateBusinessName(businessName); err != nil {
		return nil, err
	}
	if !businessType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Invalid business type")
	}
	if err := address.Validate(); err != nil {
		return nil, err
	}
	if createdBy == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Creator cannot be empty")
	}

	c := &Client{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(createdBy, creatorName),
		Code:               code,
		BusinessName:       businessName,
		BusinessType:       businessType,
		Address:            address,
		DeletionState:      shared.DeletionStateActive,
	}

	c.AddDomainEvent(NewClientCreatedEvent(c, createdBy))

	return c, nil
}

// Update changes the client's mutable business details. The code stays as
// assigned at creation.
func (c *Client) Update(businessName string, businessType BusinessType, address Address, actorID uuid.UUID) error {
	if err := validateBusinessName(businessName); err != nil {
		return err
	}
	if !businessType.IsValid() {
		return shared.NewDomainError("INVALID_TYPE", "Invalid business type")
	}
	if err := address.Validate(); err != nil {
		return err
	}

	c.BusinessName = businessName
	c.BusinessType = businessType
	c.Address = address
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewClientUpdatedEvent(c, actorID))

	return nil
}

// Archive soft-deletes the client by flipping its deletion state.
// The underlying record is never removed.
func (c *Client) Archive(actorID uuid.UUID) error {
	if c.DeletionState == shared.DeletionStateInactive {
		return shared.NewDomainError("INVALID_STATE", "Client is already archived")
	}

	c.DeletionState = shared.DeletionStateInactive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewClientArchivedEvent(c, actorID))

	return nil
}

// Restore reverses a soft-delete
func (c *Client) Restore(actorID uuid.UUID) error {
	if c.DeletionState == shared.DeletionStateActive {
		return shared.NewDomainError("INVALID_STATE", "Client is already active")
	}

	c.DeletionState = shared.DeletionStateActive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewClientRestoredEvent(c, actorID))

	return nil
}

// IsActive returns true if the client is visible in default listings
func (c *Client) IsActive() bool {
	return c.DeletionState == shared.DeletionStateActive
}

func validateBusinessName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Business name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Business name cannot exceed 200 characters")
	}
	return nil
}
