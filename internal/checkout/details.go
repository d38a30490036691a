package checkout

import (
	"fmt"
	"strings"

	"github.com/Mpictdev01/adventure-hub/internal/domain"
	"github.com/Mpictdev01/adventure-hub/internal/domain/models"
)

// Field is an editable participant attribute on the details step.
type Field string

const (
	FieldFullName              Field = "fullName"
	FieldIDNumber              Field = "idNumber"
	FieldPhone                 Field = "phone"
	FieldEmail                 Field = "email"
	FieldEmergencyContactName  Field = "emergencyContactName"
	FieldEmergencyContactPhone Field = "emergencyContactPhone"
)

// mirrored fields are copied from the main booker by the toggle.
func (f Field) mirrored() bool {
	return f == FieldFullName || f == FieldIDNumber || f == FieldPhone
}

func setField(p *models.Participant, f Field, v string) error {
	switch f {
	case FieldFullName:
		p.FullName = v
	case FieldIDNumber:
		p.IDNumber = v
	case FieldPhone:
		p.Phone = v
	case FieldEmail:
		p.Email = v
	case FieldEmergencyContactName:
		p.EmergencyContactName = v
	case FieldEmergencyContactPhone:
		p.EmergencyContactPhone = v
	default:
		return domain.ValidationError{Field: string(f), Msg: "unknown field"}
	}
	return nil
}

// DetailsForm is the editable state of step 2. It is committed to the draft
// only by Wizard.CompleteDetails.
type DetailsForm struct {
	MainBooker   models.Participant
	participants []models.Participant
	sameAsMain   []bool
}

// BeginDetails opens step 2 with exactly ParticipantCount forms, reusing any
// participants already in the draft.
func (w *Wizard) BeginDetails() (*DetailsForm, error) {
	if _, err := w.Enter(StepDetails); err != nil {
		return nil, err
	}
	d := w.store.Get()
	f := &DetailsForm{
		participants: make([]models.Participant, d.ParticipantCount),
		sameAsMain:   make([]bool, d.ParticipantCount),
	}
	if d.MainBooker != nil {
		f.MainBooker = *d.MainBooker
	}
	copy(f.participants, d.Participants)
	return f, nil
}

// CompleteDetails is the step 2 → 3 gate. The first violation is returned and
// nothing is written.
func (w *Wizard) CompleteDetails(f *DetailsForm) (Step, error) {
	if s, err := w.Enter(StepDetails); err != nil {
		return s, err
	}
	if err := f.Validate(); err != nil {
		return StepDetails, err
	}
	if n := w.store.Get().ParticipantCount; len(f.participants) != n {
		return StepDetails, domain.ValidationError{Field: "participants", Msg: fmt.Sprintf("expected %d participants", n)}
	}
	main := f.MainBooker
	w.store.Update(WithMainBooker(&main), WithParticipants(f.participants))
	return StepReview, nil
}

func (f *DetailsForm) Len() int { return len(f.participants) }

func (f *DetailsForm) Participant(i int) (models.Participant, error) {
	if err := f.checkIndex(i); err != nil {
		return models.Participant{}, err
	}
	return f.participants[i], nil
}

func (f *DetailsForm) Participants() []models.Participant {
	return append([]models.Participant(nil), f.participants...)
}

func (f *DetailsForm) SetMainBookerField(field Field, value string) error {
	return setField(&f.MainBooker, field, value)
}

// SetParticipantField edits participant i. Name, ID number and phone are
// read-only while the participant mirrors the main booker.
func (f *DetailsForm) SetParticipantField(i int, field Field, value string) error {
	if err := f.checkIndex(i); err != nil {
		return err
	}
	if f.sameAsMain[i] && field.mirrored() {
		return ErrFieldLocked
	}
	return setField(&f.participants[i], field, value)
}

// SetSameAsMainBooker copies the main booker's current name, ID number and
// phone into participant i when enabled. The copy is a snapshot: later main
// booker edits are not tracked, and disabling keeps the copied values.
func (f *DetailsForm) SetSameAsMainBooker(i int, on bool) error {
	if err := f.checkIndex(i); err != nil {
		return err
	}
	f.sameAsMain[i] = on
	if on {
		f.participants[i].FullName = f.MainBooker.FullName
		f.participants[i].IDNumber = f.MainBooker.IDNumber
		f.participants[i].Phone = f.MainBooker.Phone
	}
	return nil
}

func (f *DetailsForm) SameAsMainBooker(i int) bool {
	if i < 0 || i >= len(f.sameAsMain) {
		return false
	}
	return f.sameAsMain[i]
}

// Validate reports the first missing required field.
func (f *DetailsForm) Validate() error {
	main := f.MainBooker
	if err := validateMainBooker(&main); err != nil {
		return err
	}
	for i, p := range f.participants {
		if err := validateParticipant(i, p); err != nil {
			return err
		}
	}
	return nil
}

func (f *DetailsForm) checkIndex(i int) error {
	if i < 0 || i >= len(f.participants) {
		return domain.ValidationError{Field: "participants", Msg: fmt.Sprintf("no participant %d", i+1)}
	}
	return nil
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func validateMainBooker(p *models.Participant) error {
	if p == nil {
		return domain.ValidationError{Field: "mainBooker", Msg: "please fill in the main booker details"}
	}
	switch {
	case blank(p.FullName):
		return domain.ValidationError{Field: "mainBooker.fullName", Msg: "please fill in the main booker's full name"}
	case blank(p.Email):
		return domain.ValidationError{Field: "mainBooker.email", Msg: "please fill in the main booker's email"}
	case blank(p.Phone):
		return domain.ValidationError{Field: "mainBooker.phone", Msg: "please fill in the main booker's phone number"}
	}
	return nil
}

func validateParticipant(i int, p models.Participant) error {
	var missing Field
	switch {
	case blank(p.FullName):
		missing = FieldFullName
	case blank(p.IDNumber):
		missing = FieldIDNumber
	case blank(p.Phone):
		missing = FieldPhone
	default:
		return nil
	}
	return domain.ValidationError{
		Field: fmt.Sprintf("participants[%d].%s", i, missing),
		Msg:   fmt.Sprintf("please fill in all fields for participant %d", i+1),
	}
}
