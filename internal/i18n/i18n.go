package i18n

import "strings"

// French is the primary language of the back-office; English is a best-effort
// fallback for the few staff browsers configured that way.

var translations = map[string]map[string]string{
	"fr": {
		"required":           "Requis",
		"must_be_number":     "Doit être un nombre",
		"must_be_positive":   "Doit être positif",
		"invalid_date":       "Date invalide",
		"nbr_required":       "Le numéro est requis",
		"nbr_taken":          "Numéro déjà utilisé",
		"api_unreachable":    "Erreur de connexion au serveur",
		"reservation_added":  "Réservation ajoutée avec succès",
		"reservation_saved":  "Réservation mise à jour avec succès",
		"reservation_gone":   "Réservation supprimée avec succès",
		"reservation_error":  "Erreur lors de l'enregistrement de la réservation",
		"delete_error":       "Erreur lors de la suppression de la réservation",
		"list_error":         "Erreur lors du chargement des réservations",
		"not_found":          "Réservation introuvable",
		"rejected":           "Données refusées par le serveur",
		"client_added":       "Client ajouté avec succès",
		"client_saved":       "Client mis à jour avec succès",
		"client_gone":        "Client supprimé avec succès",
		"immeuble_added":     "Immeuble ajouté avec succès",
		"immeuble_saved":     "Immeuble mis à jour avec succès",
		"immeuble_gone":      "Immeuble supprimé avec succès",
		"invalid_credentials": "Nom d'utilisateur/email ou mot de passe invalide",
		"yes":                "Oui",
		"no":                 "Non",
	},
	"en": {
		"required":           "Required",
		"must_be_number":     "Must be a number",
		"must_be_positive":   "Must be positive",
		"invalid_date":       "Invalid date",
		"nbr_required":       "Number is required",
		"nbr_taken":          "Number already used",
		"api_unreachable":    "Could not reach the server",
		"reservation_added":  "Reservation added",
		"reservation_saved":  "Reservation updated",
		"reservation_gone":   "Reservation deleted",
		"reservation_error":  "Could not save the reservation",
		"delete_error":       "Could not delete the reservation",
		"list_error":         "Could not load reservations",
		"not_found":          "Reservation not found",
		"rejected":           "Data rejected by the server",
		"client_added":       "Client added",
		"client_saved":       "Client updated",
		"client_gone":        "Client deleted",
		"immeuble_added":     "Building added",
		"immeuble_saved":     "Building updated",
		"immeuble_gone":      "Building deleted",
		"invalid_credentials": "Invalid email or password",
		"yes":                "Yes",
		"no":                 "No",
	},
}

// T translates a message code. Unknown languages fall back to French;
// unknown codes fall back to the code itself so missing entries stay visible.
func T(lang, code string) string {
	if m, ok := translations[lang]; ok {
		if s, ok := m[code]; ok {
			return s
		}
	}
	if lang != "fr" {
		if s, ok := translations["fr"][code]; ok {
			return s
		}
	}
	return code
}

// DetectLanguage resolves an Accept-Language header to a supported language.
// Default is French.
func DetectLanguage(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	if h == "" {
		return "fr"
	}
	for _, part := range strings.Split(h, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		base := strings.SplitN(tag, "-", 2)[0]
		if _, ok := translations[base]; ok {
			return base
		}
	}
	return "fr"
}
