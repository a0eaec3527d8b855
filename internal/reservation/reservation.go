package reservation

import (
	"strings"
	"time"

	"github.com/diewo77/go-immo/internal/validation"
)

// Reservation is the unit-sale reservation record exchanged with the remote
// API. Field names on the wire are the historic French labels of the backend;
// every field except Nbr is optional and nil means "unspecified" (never 0).
// Nbr is the external identifier: it keys update/delete URLs and is immutable
// once the record exists.
type Reservation struct {
	Nbr int `json:"nbr"`

	// Informations de base
	DateReservation *string `json:"dateRéservation"`
	Nom             *string `json:"nom"`
	Telephone       *string `json:"téléphone"`
	Commercial      *string `json:"commercial"`
	Remarque        *string `json:"remarque"`

	// Informations sur le bien
	Immeuble     *int     `json:"immeuble"`
	Type         *string  `json:"type"`
	NumeroDUnite *string  `json:"numéroDUnité"`
	Niveau       *string  `json:"niveau"`
	Superf       *float64 `json:"superf"`
	Mezanine     *float64 `json:"mezanine"`
	NumParking   *int     `json:"numParking"`
	Consistance  *string  `json:"consistance"`
	PteDite      *string  `json:"ptéDite"`

	// Informations financières
	PrixDeVente          *float64 `json:"prixDeVente"`
	PrixContrat          *float64 `json:"prixContrat"`
	AvanceContrat        *float64 `json:"avanceContrat"`
	Autofinancement      *float64 `json:"autofinancement"`
	ReliquatReglementClt *float64 `json:"reliquatRèglementClt"`

	// Informations juridiques
	CodeManfiaa                *string  `json:"codeManfiaa"`
	CodeCadastre               *string  `json:"codeCadastre"`
	NumeroTaxeThTsc            *string  `json:"numéroDeLaTaxeThTsc"`
	ContratReservation         *string  `json:"contratRéservation"`
	Notaire                    *string  `json:"notaire"`
	SignatureCvVi              *string  `json:"signatureCvVi"`
	RegCyndic                  *string  `json:"regCyndic"`
	NFraction                  *int     `json:"nFraction"`
	NFraction2                 *string  `json:"nFraction2"`
	NDuTitre13                 *string  `json:"nDuTitre13"`
	SuperficieCadastraleMag    *float64 `json:"superficieCadastraleMag"`
	SuperficiePlancherCad      *float64 `json:"superficiePlancherCad"`
	SuperficieCadastraleMezCad *float64 `json:"superficieCadastraleMezCad"`
	Reserve                    *bool    `json:"résérvOui1Non0"`
}

// UnitTypes are the accepted values of the Type select.
var UnitTypes = []string{"Appartement", "Villa", "Local Commercial", "Bureau"}

// Validate applies the local acceptance rules run before any network call.
// Only nbr is required; optional amounts and areas must not be negative.
func (r *Reservation) Validate() validation.Violations {
	v := make(validation.Violations)
	if r.Nbr <= 0 {
		v["nbr"] = "nbr_required"
	}
	if r.DateReservation != nil && *r.DateReservation != "" {
		if _, err := ParseWireDate(*r.DateReservation); err != nil {
			v["dateRéservation"] = "invalid_date"
		}
	}
	validation.NonNegative("superf", r.Superf, v)
	validation.NonNegative("mezanine", r.Mezanine, v)
	validation.NonNegative("prixDeVente", r.PrixDeVente, v)
	validation.NonNegative("prixContrat", r.PrixContrat, v)
	validation.NonNegative("avanceContrat", r.AvanceContrat, v)
	validation.NonNegative("autofinancement", r.Autofinancement, v)
	validation.NonNegative("reliquatRèglementClt", r.ReliquatReglementClt, v)
	validation.NonNegative("superficieCadastraleMag", r.SuperficieCadastraleMag, v)
	validation.NonNegative("superficiePlancherCad", r.SuperficiePlancherCad, v)
	validation.NonNegative("superficieCadastraleMezCad", r.SuperficieCadastraleMezCad, v)
	validation.NonNegativeInt("numParking", r.NumParking, v)
	return v
}

// ParseWireDate accepts the two date shapes the backend emits: a bare ISO
// date or a full RFC3339 timestamp. Only the calendar date is kept, so a
// record edited in Casablanca never shifts by a day.
func ParseWireDate(s string) (time.Time, error) {
	raw := strings.TrimSpace(s)
	if len(raw) > 10 {
		raw = raw[:10]
	}
	return time.Parse("2006-01-02", raw)
}

// FormDate converts a wire date to the YYYY-MM-DD form the date input edits.
// Unset or unparseable dates become the empty string.
func FormDate(s *string) string {
	if s == nil {
		return ""
	}
	d, err := ParseWireDate(*s)
	if err != nil {
		return ""
	}
	return d.Format("2006-01-02")
}
