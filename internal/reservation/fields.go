package reservation

// Kind drives how a field is rendered, bound and exported.
type Kind string

const (
	KindText     Kind = "text"
	KindTextarea Kind = "textarea"
	KindInt      Kind = "int"
	KindDecimal  Kind = "decimal"
	KindDate     Kind = "date"
	KindSelect   Kind = "select"
	KindBool     Kind = "bool"
)

// Field describes one form input of the reservation screen. The single
// descriptor table replaces the hand-written per-field markup of the old UI:
// the form template, the binder and the Excel export all iterate over it.
type Field struct {
	Name     string // wire/form name
	Label    string
	Kind     Kind
	Section  string
	Required bool
	Options  []string // select kinds only
}

// Sections, in display order.
const (
	SectionBase      = "Informations de base"
	SectionBien      = "Informations sur le bien"
	SectionFinance   = "Informations financières"
	SectionJuridique = "Informations juridiques"
)

var Fields = []Field{
	{Name: "nbr", Label: "Numéro", Kind: KindInt, Section: SectionBase, Required: true},
	{Name: "dateRéservation", Label: "Date Réservation", Kind: KindDate, Section: SectionBase},
	{Name: "nom", Label: "Nom", Kind: KindText, Section: SectionBase},
	{Name: "téléphone", Label: "Téléphone", Kind: KindText, Section: SectionBase},
	{Name: "commercial", Label: "Commercial", Kind: KindText, Section: SectionBase},
	{Name: "remarque", Label: "Remarque", Kind: KindTextarea, Section: SectionBase},

	{Name: "immeuble", Label: "Immeuble", Kind: KindInt, Section: SectionBien},
	{Name: "type", Label: "Type", Kind: KindSelect, Section: SectionBien, Options: UnitTypes},
	{Name: "numéroDUnité", Label: "Numéro d'unité", Kind: KindText, Section: SectionBien},
	{Name: "niveau", Label: "Niveau", Kind: KindText, Section: SectionBien},
	{Name: "superf", Label: "Superficie (m²)", Kind: KindDecimal, Section: SectionBien},
	{Name: "mezanine", Label: "Mezzanine (m²)", Kind: KindDecimal, Section: SectionBien},
	{Name: "numParking", Label: "Numéro Parking", Kind: KindInt, Section: SectionBien},
	{Name: "consistance", Label: "Consistance", Kind: KindText, Section: SectionBien},
	{Name: "ptéDite", Label: "Propriété dite", Kind: KindText, Section: SectionBien},

	{Name: "prixDeVente", Label: "Prix de vente (DH)", Kind: KindDecimal, Section: SectionFinance},
	{Name: "prixContrat", Label: "Prix contrat (DH)", Kind: KindDecimal, Section: SectionFinance},
	{Name: "avanceContrat", Label: "Avance contrat (DH)", Kind: KindDecimal, Section: SectionFinance},
	{Name: "autofinancement", Label: "Autofinancement (DH)", Kind: KindDecimal, Section: SectionFinance},
	{Name: "reliquatRèglementClt", Label: "Reliquat règlement (DH)", Kind: KindDecimal, Section: SectionFinance},

	{Name: "codeManfiaa", Label: "Code Manfiaa", Kind: KindText, Section: SectionJuridique},
	{Name: "codeCadastre", Label: "Code Cadastre", Kind: KindText, Section: SectionJuridique},
	{Name: "numéroDeLaTaxeThTsc", Label: "Numéro Taxe TH/TSC", Kind: KindText, Section: SectionJuridique},
	{Name: "contratRéservation", Label: "Contrat Réservation", Kind: KindText, Section: SectionJuridique},
	{Name: "notaire", Label: "Notaire", Kind: KindText, Section: SectionJuridique},
	{Name: "signatureCvVi", Label: "Signature CV/VI", Kind: KindText, Section: SectionJuridique},
	{Name: "regCyndic", Label: "Règlement Syndic", Kind: KindText, Section: SectionJuridique},
	{Name: "nFraction", Label: "N° Fraction", Kind: KindInt, Section: SectionJuridique},
	{Name: "nFraction2", Label: "N° Fraction 2", Kind: KindText, Section: SectionJuridique},
	{Name: "nDuTitre13", Label: "N° Titre 13", Kind: KindText, Section: SectionJuridique},
	{Name: "superficieCadastraleMag", Label: "Superficie Cadastrale Mag (m²)", Kind: KindDecimal, Section: SectionJuridique},
	{Name: "superficiePlancherCad", Label: "Superficie Plancher Cad (m²)", Kind: KindDecimal, Section: SectionJuridique},
	{Name: "superficieCadastraleMezCad", Label: "Superficie Cadastrale Mez (m²)", Kind: KindDecimal, Section: SectionJuridique},
	{Name: "résérvOui1Non0", Label: "Réservé", Kind: KindBool, Section: SectionJuridique},
}

// FieldsBySection groups the descriptor table for the form template.
func FieldsBySection() map[string][]Field {
	out := make(map[string][]Field, 4)
	for _, f := range Fields {
		out[f.Section] = append(out[f.Section], f)
	}
	return out
}

// SectionOrder returns the display order of form sections.
func SectionOrder() []string {
	return []string{SectionBase, SectionBien, SectionFinance, SectionJuridique}
}
