package reservation

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/diewo77/go-immo/internal/validation"
)

// Form states. A form is opened in add or edit mode, validated and submitted;
// on success it closes, on any failure it stays open with the entered data.
type State string

const (
	StateClosed     State = "closed"
	StateAdd        State = "open_add"
	StateEdit       State = "open_edit"
	StateSubmitting State = "submitting"
)

// FormController owns the add/edit form lifecycle for one interaction.
// It consolidates the competing page drafts of the old UI behind a single
// validation policy: nbr is the only required field and blank numerics bind
// to nil, not zero.
type FormController struct {
	state      State
	editing    bool
	Record     Reservation
	Violations validation.Violations
}

func NewFormController() *FormController {
	return &FormController{state: StateClosed, Violations: make(validation.Violations)}
}

func (f *FormController) State() State  { return f.state }
func (f *FormController) Editing() bool { return f.editing }

// OpenAdd resets every field and pre-fills today's date.
func (f *FormController) OpenAdd(now time.Time) {
	date := now.Format("2006-01-02")
	f.Record = Reservation{DateReservation: &date}
	f.Violations = make(validation.Violations)
	f.editing = false
	f.state = StateAdd
}

// OpenEdit hydrates the form from an existing record, converting the stored
// date to the editable local format. Nbr is locked for the whole edit.
func (f *FormController) OpenEdit(rec Reservation) {
	if rec.DateReservation != nil {
		if d := FormDate(rec.DateReservation); d != "" {
			rec.DateReservation = &d
		}
	}
	f.Record = rec
	f.Violations = make(validation.Violations)
	f.editing = true
	f.state = StateEdit
}

// Close abandons the form; entered data is discarded.
func (f *FormController) Close() {
	f.state = StateClosed
}

// Bind reads submitted form values into the record, driven by the field
// descriptor table. Blank inputs stay nil. Parse failures are recorded as
// violations but never abort the bind: the rest of the form is preserved.
func (f *FormController) Bind(values url.Values) {
	f.Violations = make(validation.Violations)
	for _, fd := range Fields {
		raw := strings.TrimSpace(values.Get(fd.Name))
		if fd.Name == "nbr" {
			if f.editing {
				continue // immutable once the record exists
			}
			if raw == "" {
				f.Record.Nbr = 0
				continue
			}
			n, err := strconv.Atoi(raw)
			if err != nil {
				f.Violations[fd.Name] = "must_be_number"
				continue
			}
			f.Record.Nbr = n
			continue
		}
		switch fd.Kind {
		case KindText, KindTextarea, KindDate, KindSelect:
			setString(fieldString(&f.Record, fd.Name), raw)
		case KindInt:
			p := fieldInt(&f.Record, fd.Name)
			if raw == "" {
				*p = nil
				continue
			}
			n, err := strconv.Atoi(raw)
			if err != nil {
				f.Violations[fd.Name] = "must_be_number"
				continue
			}
			*p = &n
		case KindDecimal:
			p := fieldFloat(&f.Record, fd.Name)
			if raw == "" {
				*p = nil
				continue
			}
			n, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				f.Violations[fd.Name] = "must_be_number"
				continue
			}
			*p = &n
		case KindBool:
			// tri-state: no selection must stay null, never false
			switch raw {
			case "":
				f.Record.Reserve = nil
			case "1", "true", "oui":
				b := true
				f.Record.Reserve = &b
			default:
				b := false
				f.Record.Reserve = &b
			}
		}
	}
}

// Validate merges bind-time violations with the record-level rules.
func (f *FormController) Validate() validation.Violations {
	v := f.Record.Validate()
	for field, code := range f.Violations {
		v[field] = code
	}
	f.Violations = v
	return v
}

// Submit validates then calls the API. Validation failures keep the form
// open and guarantee no network call. On API failure the form also stays
// open so entered data is not lost; on success it closes and the caller
// must refresh its list.
func (f *FormController) Submit(ctx context.Context, api *Client) (*Reservation, error) {
	reopen := f.state
	if !f.Validate().Empty() {
		return nil, ErrInvalidForm
	}
	f.state = StateSubmitting

	var (
		saved *Reservation
		err   error
	)
	if f.editing {
		saved, err = api.Update(ctx, f.Record.Nbr, f.Record)
	} else {
		saved, err = api.Create(ctx, f.Record)
	}
	if err != nil {
		f.state = reopen
		return nil, err
	}
	f.state = StateClosed
	return saved, nil
}

// setString writes raw into the target, mapping blank to nil.
func setString(p **string, raw string) {
	if raw == "" {
		*p = nil
		return
	}
	s := raw
	*p = &s
}

// The three accessors below are the bridge between the descriptor table and
// the typed struct; adding a field means one descriptor plus one case here.

func fieldString(r *Reservation, name string) **string {
	switch name {
	case "dateRéservation":
		return &r.DateReservation
	case "nom":
		return &r.Nom
	case "téléphone":
		return &r.Telephone
	case "commercial":
		return &r.Commercial
	case "remarque":
		return &r.Remarque
	case "type":
		return &r.Type
	case "numéroDUnité":
		return &r.NumeroDUnite
	case "niveau":
		return &r.Niveau
	case "consistance":
		return &r.Consistance
	case "ptéDite":
		return &r.PteDite
	case "codeManfiaa":
		return &r.CodeManfiaa
	case "codeCadastre":
		return &r.CodeCadastre
	case "numéroDeLaTaxeThTsc":
		return &r.NumeroTaxeThTsc
	case "contratRéservation":
		return &r.ContratReservation
	case "notaire":
		return &r.Notaire
	case "signatureCvVi":
		return &r.SignatureCvVi
	case "regCyndic":
		return &r.RegCyndic
	case "nFraction2":
		return &r.NFraction2
	case "nDuTitre13":
		return &r.NDuTitre13
	}
	panic("unknown string field: " + name)
}

func fieldInt(r *Reservation, name string) **int {
	switch name {
	case "immeuble":
		return &r.Immeuble
	case "numParking":
		return &r.NumParking
	case "nFraction":
		return &r.NFraction
	}
	panic("unknown int field: " + name)
}

func fieldFloat(r *Reservation, name string) **float64 {
	switch name {
	case "superf":
		return &r.Superf
	case "mezanine":
		return &r.Mezanine
	case "prixDeVente":
		return &r.PrixDeVente
	case "prixContrat":
		return &r.PrixContrat
	case "avanceContrat":
		return &r.AvanceContrat
	case "autofinancement":
		return &r.Autofinancement
	case "reliquatRèglementClt":
		return &r.ReliquatReglementClt
	case "superficieCadastraleMag":
		return &r.SuperficieCadastraleMag
	case "superficiePlancherCad":
		return &r.SuperficiePlancherCad
	case "superficieCadastraleMezCad":
		return &r.SuperficieCadastraleMezCad
	}
	panic("unknown decimal field: " + name)
}

// Value returns the current form value of a field as a string, for template
// re-rendering after a failed submit.
func (f *FormController) Value(name string) string {
	if name == "nbr" {
		if f.Record.Nbr == 0 && !f.editing {
			return ""
		}
		return strconv.Itoa(f.Record.Nbr)
	}
	for _, fd := range Fields {
		if fd.Name != name {
			continue
		}
		switch fd.Kind {
		case KindText, KindTextarea, KindDate, KindSelect:
			p := *fieldString(&f.Record, name)
			if p == nil {
				return ""
			}
			return *p
		case KindInt:
			p := *fieldInt(&f.Record, name)
			if p == nil {
				return ""
			}
			return strconv.Itoa(*p)
		case KindDecimal:
			p := *fieldFloat(&f.Record, name)
			if p == nil {
				return ""
			}
			return strconv.FormatFloat(*p, 'f', -1, 64)
		case KindBool:
			if f.Record.Reserve == nil {
				return ""
			}
			if *f.Record.Reserve {
				return "1"
			}
			return "0"
		}
	}
	return ""
}
