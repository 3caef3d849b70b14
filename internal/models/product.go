package models

// Product est un produit mis en vente par un farmer.
// Prix et poids restent des champs texte : aucune arithmétique monétaire
// n'est faite côté serveur, l'app mobile affiche la chaîne telle quelle.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Weight   string `json:"weight"`
	ImageURL string `json:"imageUrl"`
	OwnerID  string `json:"ownerId"`
}
