// Package activity derives and records the append-only property activity log.
// Change detection is string-based: old and new values are compared by their
// string rendering, so type-level differences between equal values never
// produce a log entry.
package activity

import (
	"fmt"
	"strings"

	"property-analyst/internal/database"
	"property-analyst/internal/models"
)

// Logger writes activity-log rows. Callers treat every method as
// fire-and-forget: a returned error must never fail the mutation that
// triggered it.
type Logger struct {
	store *database.DB
}

// NewLogger creates an activity logger backed by the store
func NewLogger(store *database.DB) *Logger {
	return &Logger{store: store}
}

// trackedField is one property attribute monitored for change logging. The
// set is fixed: ids, broker ids and timestamps are never tracked.
type trackedField struct {
	name  string
	label string
	old   func(*models.Property) string
	new   func(*models.PropertyPayload) (string, bool)
}

func stringField(v *string) (string, bool) {
	// Empty strings are stripped from payloads before they reach the store,
	// so they count as absent here too.
	if v == nil || *v == "" {
		return "", false
	}
	return *v, true
}

func floatField(v *float64) (string, bool) {
	if v == nil {
		return "", false
	}
	return floatString(v), true
}

func intField(v *int) (string, bool) {
	if v == nil {
		return "", false
	}
	return intString(v), true
}

var trackedFields = []trackedField{
	{"status", "Status",
		func(p *models.Property) string { return string(p.Status) },
		func(u *models.PropertyPayload) (string, bool) { return stringField(u.Status) }},
	{"property_type", "Property Type",
		func(p *models.Property) string { return string(p.PropertyType) },
		func(u *models.PropertyPayload) (string, bool) { return stringField(u.PropertyType) }},
	{"total_price", "Total Price",
		func(p *models.Property) string { return floatString(p.TotalPrice) },
		func(u *models.PropertyPayload) (string, bool) { return floatField(u.TotalPrice) }},
	{"price_per_sqft", "Price/sq.ft",
		func(p *models.Property) string { return floatString(p.PricePerSqft) },
		func(u *models.PropertyPayload) (string, bool) { return floatField(u.PricePerSqft) }},
	{"city", "City",
		func(p *models.Property) string { return p.City },
		func(u *models.PropertyPayload) (string, bool) { return stringField(u.City) }},
	{"area", "Area",
		func(p *models.Property) string { return p.Area },
		func(u *models.PropertyPayload) (string, bool) { return stringField(u.Area) }},
	{"locality", "Locality",
		func(p *models.Property) string { return p.Locality },
		func(u *models.PropertyPayload) (string, bool) { return stringField(u.Locality) }},
	{"address", "Address",
		func(p *models.Property) string { return p.Address },
		func(u *models.PropertyPayload) (string, bool) { return stringField(u.Address) }},
	{"bhk", "BHK",
		func(p *models.Property) string { return intString(p.BHK) },
		func(u *models.PropertyPayload) (string, bool) { return intField(u.BHK) }},
	{"furnished_status", "Furnished Status",
		func(p *models.Property) string { return p.FurnishedStatus },
		func(u *models.PropertyPayload) (string, bool) { return stringField(u.FurnishedStatus) }},
	{"floor_number", "Floor",
		func(p *models.Property) string { return intString(p.FloorNumber) },
		func(u *models.PropertyPayload) (string, bool) { return intField(u.FloorNumber) }},
	{"total_floors", "Total Floors",
		func(p *models.Property) string { return intString(p.TotalFloors) },
		func(u *models.PropertyPayload) (string, bool) { return intField(u.TotalFloors) }},
	{"plot_area", "Plot Area",
		func(p *models.Property) string { return floatString(p.PlotArea) },
		func(u *models.PropertyPayload) (string, bool) { return floatField(u.PlotArea) }},
	{"built_up_area", "Built-up Area",
		func(p *models.Property) string { return floatString(p.BuiltUpArea) },
		func(u *models.PropertyPayload) (string, bool) { return floatField(u.BuiltUpArea) }},
	{"carpet_area", "Carpet Area",
		func(p *models.Property) string { return floatString(p.CarpetArea) },
		func(u *models.PropertyPayload) (string, bool) { return floatField(u.CarpetArea) }},
	{"survey_no", "Survey No",
		func(p *models.Property) string { return p.SurveyNo },
		func(u *models.PropertyPayload) (string, bool) { return stringField(u.SurveyNo) }},
	{"lat", "Latitude",
		func(p *models.Property) string { return floatString(p.Lat) },
		func(u *models.PropertyPayload) (string, bool) { return floatField(u.Lat) }},
	{"lng", "Longitude",
		func(p *models.Property) string { return floatString(p.Lng) },
		func(u *models.PropertyPayload) (string, bool) { return floatField(u.Lng) }},
	{"notes", "Notes",
		func(p *models.Property) string { return p.Notes },
		func(u *models.PropertyPayload) (string, bool) { return stringField(u.Notes) }},
}

// PropertyCreated records a new listing
func (l *Logger) PropertyCreated(brokerID string, p *models.Property) error {
	parts := []string{}
	for _, s := range []string{p.Locality, p.Area, p.City} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	description := fmt.Sprintf("Property created — %s", p.PropertyType)
	if len(parts) > 0 {
		description += " in " + strings.Join(parts, ", ")
	}

	return l.store.InsertLogs([]models.PropertyLog{{
		PropertyID:  p.ID,
		BrokerID:    brokerID,
		Action:      models.LogActionCreated,
		Description: description,
	}})
}

// PropertyUpdated diffs the before-image against the update payload and
// records one row per changed tracked field. An identical payload records
// nothing.
func (l *Logger) PropertyUpdated(brokerID, propertyID string, old *models.Property, payload *models.PropertyPayload) error {
	var logs []models.PropertyLog

	for _, f := range trackedFields {
		newVal, present := f.new(payload)
		if !present {
			continue
		}
		oldVal := f.old(old)
		if oldVal == newVal {
			continue
		}

		logs = append(logs, models.PropertyLog{
			PropertyID:  propertyID,
			BrokerID:    brokerID,
			Action:      models.LogActionUpdated,
			FieldName:   f.name,
			OldValue:    optional(oldVal),
			NewValue:    optional(newVal),
			Description: fmt.Sprintf("%s changed from %q to %q", f.label, formatValue(f.name, oldVal), formatValue(f.name, newVal)),
		})
	}

	return l.store.InsertLogs(logs)
}

// OwnerAdded records a new owner on the timeline
func (l *Logger) OwnerAdded(brokerID, propertyID, ownerName string) error {
	return l.store.InsertLogs([]models.PropertyLog{{
		PropertyID:  propertyID,
		BrokerID:    brokerID,
		Action:      models.LogActionOwnerAdded,
		Description: fmt.Sprintf("New owner added — %s", ownerName),
	}})
}

// OwnerUpdated compares name, phone and the current-owner flag, joining one
// clause per change into a single row. No changes, no row.
func (l *Logger) OwnerUpdated(brokerID, propertyID string, old *models.PropertyOwner, payload *models.OwnerPayload) error {
	var changes []string

	if payload.OwnerName != nil && *payload.OwnerName != "" && *payload.OwnerName != old.OwnerName {
		changes = append(changes, fmt.Sprintf("name changed from %q to %q", old.OwnerName, *payload.OwnerName))
	}
	if payload.PhoneNumber != nil && *payload.PhoneNumber != old.PhoneNumber {
		changes = append(changes, fmt.Sprintf("phone changed from %q to %q",
			formatValue("phone_number", old.PhoneNumber), formatValue("phone_number", *payload.PhoneNumber)))
	}
	if payload.IsCurrentOwner != nil && *payload.IsCurrentOwner != old.IsCurrentOwner {
		if *payload.IsCurrentOwner {
			changes = append(changes, "marked as current owner")
		} else {
			changes = append(changes, "removed as current owner")
		}
	}

	if len(changes) == 0 {
		return nil
	}

	return l.store.InsertLogs([]models.PropertyLog{{
		PropertyID:  propertyID,
		BrokerID:    brokerID,
		Action:      models.LogActionOwnerUpdated,
		Description: fmt.Sprintf("Owner %q — %s", old.OwnerName, strings.Join(changes, ", ")),
	}})
}

// OwnerRemoved records an owner deletion
func (l *Logger) OwnerRemoved(brokerID, propertyID, ownerName string) error {
	return l.store.InsertLogs([]models.PropertyLog{{
		PropertyID:  propertyID,
		BrokerID:    brokerID,
		Action:      models.LogActionOwnerRemoved,
		Description: fmt.Sprintf("Owner removed — %s", ownerName),
	}})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
