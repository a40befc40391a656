package drink

import (
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/kegweb/internal/models"
)

// Field names of a raw pour row
const (
	FieldID        = "id"
	FieldTicks     = "ticks"
	FieldVolume    = "volume"
	FieldStartTime = "starttime"
	FieldEndTime   = "endtime"
	FieldUserID    = "user_id"
	FieldKegID     = "keg_id"
	FieldStatus    = "status"

	// FieldGrantID is optional; rows poured without a grant omit it
	FieldGrantID = "grant_id"
)

// RequiredFields lists the keys New expects, in the order they are checked
var RequiredFields = []string{
	FieldID,
	FieldTicks,
	FieldVolume,
	FieldStartTime,
	FieldEndTime,
	FieldUserID,
	FieldKegID,
	FieldStatus,
}

// Fields is a raw pour row as loaded by the data layer
type Fields map[string]string

// UnitConverter converts a keg's raw volume units into human units.
// Implementations must be free of side effects so records can share them.
type UnitConverter interface {
	ToOunces(volume float64) float64
	ToCalories(volume float64) float64
}

// Record is a single pour event plus the associations needed to describe it
type Record struct {
	// ID is the unique identifier of the pour
	ID string

	// Ticks is the number of flow meter pulses counted for the pour
	Ticks int64

	// Volume is the poured amount in the keg's raw volume units
	Volume float64

	// StartTime is when the pour began, as YYYYMMDDHHMMSS
	StartTime string

	// EndTime is when the pour ended, as YYYYMMDDHHMMSS
	EndTime string

	// UserID identifies the drinker
	UserID string

	// KegID identifies the keg the pour was taken from
	KegID string

	// Status is the lifecycle tag of the pour
	Status models.DrinkStatus

	// GrantID identifies the grant the pour was authorized under, if any
	GrantID string

	fields      Fields
	keg         UnitConverter
	drinker     *models.Drinker
	grant       *models.Grant
	displayName string
}

// New builds a record from a raw pour row. Associations start unset.
func New(fields Fields) (*Record, error) {
	for _, key := range RequiredFields {
		if _, ok := fields[key]; !ok {
			return nil, &MissingFieldError{Field: key}
		}
	}

	ticks, err := strconv.ParseInt(fields[FieldTicks], 10, 64)
	if err != nil {
		return nil, &InvalidFieldError{Field: FieldTicks, Value: fields[FieldTicks], Err: err}
	}
	if ticks < 0 {
		return nil, &InvalidFieldError{Field: FieldTicks, Value: fields[FieldTicks]}
	}

	volume, err := strconv.ParseFloat(fields[FieldVolume], 64)
	if err != nil {
		return nil, &InvalidFieldError{Field: FieldVolume, Value: fields[FieldVolume], Err: err}
	}
	if volume < 0 {
		return nil, &InvalidFieldError{Field: FieldVolume, Value: fields[FieldVolume]}
	}

	copied := make(Fields, len(fields))
	for k, v := range fields {
		copied[k] = v
	}

	return &Record{
		ID:        fields[FieldID],
		Ticks:     ticks,
		Volume:    volume,
		StartTime: fields[FieldStartTime],
		EndTime:   fields[FieldEndTime],
		UserID:    fields[FieldUserID],
		KegID:     fields[FieldKegID],
		Status:    models.DrinkStatus(fields[FieldStatus]),
		GrantID:   fields[FieldGrantID],
		fields:    copied,
	}, nil
}

// Fields returns a copy of the row the record was built from
func (r *Record) Fields() Fields {
	out := make(Fields, len(r.fields))
	for k, v := range r.fields {
		out[k] = v
	}
	return out
}

// AttachKeg sets the keg used for unit conversions.
// It is not checked against KegID.
func (r *Record) AttachKeg(keg UnitConverter) {
	r.keg = keg
}

// AttachDrinker sets the drinker the pour belongs to.
// It is not checked against UserID.
func (r *Record) AttachDrinker(drinker *models.Drinker) {
	r.drinker = drinker
}

// AttachGrant sets the grant the pour was authorized under
func (r *Record) AttachGrant(grant *models.Grant) {
	r.grant = grant
}

// Keg returns the attached keg, or nil
func (r *Record) Keg() UnitConverter {
	return r.keg
}

// Drinker returns the attached drinker, or nil
func (r *Record) Drinker() *models.Drinker {
	return r.drinker
}

// Grant returns the attached grant, or nil
func (r *Record) Grant() *models.Grant {
	return r.grant
}

// OuncesPoured converts the poured volume to ounces using the attached keg
func (r *Record) OuncesPoured() (float64, error) {
	if r.keg == nil {
		return 0, ErrNoKegAttached
	}
	return r.keg.ToOunces(r.Volume), nil
}

// CaloriesPoured converts the poured volume to calories using the attached keg
func (r *Record) CaloriesPoured() (float64, error) {
	if r.keg == nil {
		return 0, ErrNoKegAttached
	}
	return r.keg.ToCalories(r.Volume), nil
}

// PourSizeOunces returns the size of the pour in ounces.
// There is no manual size override; the size is always computed from the keg.
func (r *Record) PourSizeOunces() (float64, error) {
	return r.OuncesPoured()
}

// Cost returns the price of the pour.
// TODO: price pours from the attached grant's policy once policies carry a unit cost.
func (r *Record) Cost() float64 {
	return 0
}

// DetailPath returns the canonical relative path of the pour
func (r *Record) DetailPath() string {
	return fmt.Sprintf("/drink/%s", r.ID)
}

// SetDisplayName caches a precomputed display name for the drinker
func (r *Record) SetDisplayName(name string) {
	r.displayName = name
}

// DrinkerName returns the cached display name, or the attached drinker's name
func (r *Record) DrinkerName() (string, error) {
	if r.displayName != "" {
		return r.displayName, nil
	}
	if r.drinker == nil {
		return "", ErrNoDrinkerAttached
	}
	return r.drinker.Name(), nil
}

// StartInstant parses StartTime in loc
func (r *Record) StartInstant(loc *time.Location) (time.Time, error) {
	return ParseTimestamp(r.StartTime, loc)
}

// EndInstant parses EndTime in loc
func (r *Record) EndInstant(loc *time.Location) (time.Time, error) {
	return ParseTimestamp(r.EndTime, loc)
}

// PourDuration returns how long the pour took. It is negative when the
// row's end time precedes its start time.
func (r *Record) PourDuration(loc *time.Location) (time.Duration, error) {
	start, err := r.StartInstant(loc)
	if err != nil {
		return 0, err
	}
	end, err := r.EndInstant(loc)
	if err != nil {
		return 0, err
	}
	return end.Sub(start), nil
}

// RelativeTimeDescription describes how long before now the pour ended.
// The end time is read in now's location.
func (r *Record) RelativeTimeDescription(now time.Time) (string, error) {
	end, err := r.EndInstant(now.Location())
	if err != nil {
		return "", err
	}
	return RelativeTime(end, now), nil
}
