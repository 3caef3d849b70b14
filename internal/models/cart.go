package models

// CartItem est une copie du produit au moment de l'ajout au panier.
// Un seul item par nom de produit et par utilisateur (garanti par LWT côté Scylla).
type CartItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Weight   string `json:"weight"`
	ImageURL string `json:"imageUrl"`
}

// CartItemFromProduct copie un produit vers un item de panier
func CartItemFromProduct(p Product) CartItem {
	return CartItem{
		Name:     p.Name,
		Price:    p.Price,
		Weight:   p.Weight,
		ImageURL: p.ImageURL,
	}
}
