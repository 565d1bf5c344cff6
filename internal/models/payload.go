package models

import "time"

// PropertyPayload is the create/update request body. Pointer fields
// distinguish "absent" from "set"; Fields spells out the full allowed set so
// nothing outside it can reach the store.
type PropertyPayload struct {
	PropertyType    *string  `json:"property_type"`
	Status          *string  `json:"status"`
	City            *string  `json:"city"`
	Area            *string  `json:"area"`
	Locality        *string  `json:"locality"`
	Address         *string  `json:"address"`
	Lat             *float64 `json:"lat"`
	Lng             *float64 `json:"lng"`
	TotalPrice      *float64 `json:"total_price"`
	PricePerSqft    *float64 `json:"price_per_sqft"`
	PlotArea        *float64 `json:"plot_area"`
	BuiltUpArea     *float64 `json:"built_up_area"`
	CarpetArea      *float64 `json:"carpet_area"`
	BHK             *int     `json:"bhk"`
	FurnishedStatus *string  `json:"furnished_status"`
	FloorNumber     *int     `json:"floor_number"`
	TotalFloors     *int     `json:"total_floors"`
	SurveyNo        *string  `json:"survey_no"`
	Notes           *string  `json:"notes"`
}

// Fields converts the payload to a column/value map for the store. Absent
// fields and empty strings are skipped, matching the form-driven client which
// submits "" for untouched inputs.
func (p *PropertyPayload) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	setString := func(col string, v *string) {
		if v != nil && *v != "" {
			fields[col] = *v
		}
	}
	setFloat := func(col string, v *float64) {
		if v != nil {
			fields[col] = *v
		}
	}
	setInt := func(col string, v *int) {
		if v != nil {
			fields[col] = *v
		}
	}

	setString("property_type", p.PropertyType)
	setString("status", p.Status)
	setString("city", p.City)
	setString("area", p.Area)
	setString("locality", p.Locality)
	setString("address", p.Address)
	setFloat("lat", p.Lat)
	setFloat("lng", p.Lng)
	setFloat("total_price", p.TotalPrice)
	setFloat("price_per_sqft", p.PricePerSqft)
	setFloat("plot_area", p.PlotArea)
	setFloat("built_up_area", p.BuiltUpArea)
	setFloat("carpet_area", p.CarpetArea)
	setInt("bhk", p.BHK)
	setString("furnished_status", p.FurnishedStatus)
	setInt("floor_number", p.FloorNumber)
	setInt("total_floors", p.TotalFloors)
	setString("survey_no", p.SurveyNo)
	setString("notes", p.Notes)

	return fields
}

// OwnerPayload is the owner create/update request body.
type OwnerPayload struct {
	OwnerName      *string `json:"owner_name"`
	PhoneNumber    *string `json:"phone_number"`
	StartDate      *string `json:"start_date"`
	EndDate        *string `json:"end_date"`
	IsCurrentOwner *bool   `json:"is_current_owner"`
	Notes          *string `json:"notes"`
}

// Fields converts the payload to a column/value map for the store. Dates
// arrive as YYYY-MM-DD strings from the form client.
func (p *OwnerPayload) Fields() map[string]interface{} {
	fields := make(map[string]interface{})

	if p.OwnerName != nil && *p.OwnerName != "" {
		fields["owner_name"] = *p.OwnerName
	}
	if p.PhoneNumber != nil && *p.PhoneNumber != "" {
		fields["phone_number"] = *p.PhoneNumber
	}
	if d := ParseDate(p.StartDate); d != nil {
		fields["start_date"] = *d
	}
	if d := ParseDate(p.EndDate); d != nil {
		fields["end_date"] = *d
	}
	if p.IsCurrentOwner != nil {
		fields["is_current_owner"] = *p.IsCurrentOwner
	}
	if p.Notes != nil && *p.Notes != "" {
		fields["notes"] = *p.Notes
	}

	return fields
}

// ParseDate parses a YYYY-MM-DD form value, returning nil for absent or
// malformed input.
func ParseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}
