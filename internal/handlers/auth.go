package handlers

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/diewo77/go-immo/internal/auth"
	"github.com/diewo77/go-immo/internal/i18n"
	"github.com/diewo77/go-immo/internal/middleware"
	"github.com/diewo77/go-immo/internal/models"
)

type AuthHandler struct {
	db *gorm.DB
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{db: db}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		renderTemplate(w, r, "login.html", nil)
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	lang := middleware.LangFrom(r)

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		renderTemplate(w, r, "login.html", map[string]any{"Error": i18n.T(lang, "invalid_credentials"), "Email": email})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		renderTemplate(w, r, "login.html", map[string]any{"Error": i18n.T(lang, "invalid_credentials"), "Email": email})
		return
	}

	auth.CreateSession(w, user.ID)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		renderTemplate(w, r, "signup.html", nil)
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	nom := r.FormValue("nom")
	prenom := r.FormValue("prenom")

	if email == "" || password == "" {
		renderTemplate(w, r, "signup.html", map[string]any{"Error": "Email et mot de passe sont requis", "Email": email, "Nom": nom, "Prenom": prenom})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		renderTemplate(w, r, "signup.html", map[string]any{"Error": "Erreur interne"})
		return
	}

	user := models.User{
		Email:    email,
		Password: string(hashedPassword),
		Nom:      nom,
		Prenom:   prenom,
	}

	if err := h.db.Create(&user).Error; err != nil {
		renderTemplate(w, r, "signup.html", map[string]any{"Error": "Cet email est déjà utilisé", "Nom": nom, "Prenom": prenom})
		return
	}

	auth.CreateSession(w, user.ID)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSession(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
