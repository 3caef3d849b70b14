package auth

import (
	"context"

	"golang.org/x/oauth2"
)

// OAuthProvider enveloppe la config oauth2 pour le flux mobile
// (l'app échange directement le code d'autorisation, pas de session web).
type OAuthProvider struct {
	Name   string
	Config *oauth2.Config
}

func (p *OAuthProvider) GetAuthURL(state string) string {
	return p.Config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (p *OAuthProvider) Exchange(code string) (*oauth2.Token, error) {
	return p.Config.Exchange(context.Background(), code)
}
