package handlers

import (
	"os"

	"farmlink_back_end/internal/auth"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
	"golang.org/x/oauth2/google"
)

// Providers : registre des providers OAuth pour le flux mobile
// (l'app échange elle-même le code, pas de cookie de session)
var Providers = map[string]*auth.OAuthProvider{}

func InitProviders() {
	Providers["google"] = &auth.OAuthProvider{
		Name: "google",
		Config: &oauth2.Config{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
			Scopes:       []string{"email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}

	Providers["facebook"] = &auth.OAuthProvider{
		Name: "facebook",
		Config: &oauth2.Config{
			ClientID:     os.Getenv("FACEBOOK_CLIENT_ID"),
			ClientSecret: os.Getenv("FACEBOOK_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("FACEBOOK_REDIRECT_URL"),
			Scopes:       []string{"email"},
			Endpoint:     facebook.Endpoint,
		},
	}
}
