package order

import (
	"errors"
	"fmt"
	"strings"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/errs"
)

// ErrUnknownStatus is the cause attached when a name is not in the catalog.
var ErrUnknownStatus = errors.New("unknown order status")

// StatusType enumerates the recognized order statuses.
//
// The catalog is fixed. Storage holds one seeded row per entry, keyed by
// the canonical name returned from String.
type StatusType int

const (
	// Unknown is the zero value and is never a valid status.
	Unknown StatusType = iota
	Created
	Pending
	Processing
	InProgress
	Shipped
	Delivered
	Completed
	Cancelled
	Failed
)

type statusEntry struct {
	statusType StatusType
	identifier string
	name       string
}

// statusCatalog is declared in catalog order. name is the canonical display
// string persisted in storage; identifier is accepted as an alias on lookup.
var statusCatalog = []statusEntry{
	{Created, "Created", "Created"},
	{Pending, "Pending", "Pending"},
	{Processing, "Processing", "Processing"},
	{InProgress, "InProgress", "In Progress"},
	{Shipped, "Shipped", "Shipped"},
	{Delivered, "Delivered", "Delivered"},
	{Completed, "Completed", "Completed"},
	{Cancelled, "Cancelled", "Cancelled"},
	{Failed, "Failed", "Failed"},
}

// StatusTypes returns every valid status in catalog order.
func StatusTypes() []StatusType {
	types := make([]StatusType, 0, len(statusCatalog))
	for _, e := range statusCatalog {
		types = append(types, e.statusType)
	}
	return types
}

// StatusNames returns the canonical names in catalog order.
func StatusNames() []string {
	names := make([]string, 0, len(statusCatalog))
	for _, e := range statusCatalog {
		names = append(names, e.name)
	}
	return names
}

// ParseStatusType resolves a status name. Surrounding whitespace and case
// are ignored; both "In Progress" and "InProgress" resolve to InProgress.
//
// Returns a ValueIsRequiredError for a blank name and a ValueIsInvalidError
// wrapping ErrUnknownStatus for a name outside the catalog.
func ParseStatusType(name string) (StatusType, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Unknown, errs.NewValueIsRequiredError("statusName")
	}

	for _, e := range statusCatalog {
		if strings.EqualFold(e.name, trimmed) || strings.EqualFold(e.identifier, trimmed) {
			return e.statusType, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"statusName",
		fmt.Errorf("%w: %q, must be one of: %s", ErrUnknownStatus, trimmed, strings.Join(StatusNames(), ", ")),
	)
}

// String returns the canonical name, or "Unknown" for values outside the catalog.
func (s StatusType) String() string {
	for _, e := range statusCatalog {
		if e.statusType == s {
			return e.name
		}
	}
	return "Unknown"
}

// Validate rejects Unknown and values outside the catalog.
func (s StatusType) Validate() error {
	for _, e := range statusCatalog {
		if e.statusType == s {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
}

// Status is a catalog entry resolved against its seeded storage row.
type Status struct {
	id         kernel.UUID
	statusType StatusType
}

// NewStatus binds a catalog entry to the identity of its storage row.
func NewStatus(id kernel.UUID, statusType StatusType) (Status, error) {
	if err := errors.Join(id.Validate(), statusType.Validate()); err != nil {
		return Status{}, err
	}
	return Status{id: id, statusType: statusType}, nil
}

// ID returns the id of the seeded storage row.
func (s Status) ID() kernel.UUID {
	return s.id
}

// Type returns the catalog entry.
func (s Status) Type() StatusType {
	return s.statusType
}

// Name returns the canonical catalog name.
func (s Status) Name() string {
	return s.statusType.String()
}

// Validate requires a non-nil row id and a catalog status type.
func (s Status) Validate() error {
	return errors.Join(s.id.Validate(), s.statusType.Validate())
}
