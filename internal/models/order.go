package models

import "time"

// Statuts possibles d'une commande. Aucun graphe de transition n'est imposé :
// tout statut peut suivre tout autre (comportement volontairement permissif).
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusDelivered = "delivered"
)

// ValidStatus indique si le statut fait partie de l'ensemble fixe.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusDelivered:
		return true
	}
	return false
}

// Order est une commande client. ProductID est une référence faible : le
// produit peut avoir été supprimé, la commande reste valide.
type Order struct {
	ID                 string    `json:"id" gorm:"primaryKey;size:36"`
	ProductID          string    `json:"productId" gorm:"column:product_id;size:36;index"`
	CustomerName       string    `json:"customerName" gorm:"column:customer_name;not null"`
	CustomerPhone      string    `json:"customerPhone" gorm:"column:customer_phone;not null"`
	CustomerAddress    string    `json:"customerAddress" gorm:"column:customer_address"`
	CustomerCity       string    `json:"customerCity" gorm:"column:customer_city"`
	Notes              string    `json:"notes"`
	Quantity           int       `json:"quantity" gorm:"default:1"`
	Status             string    `json:"status" gorm:"default:pending"`
	ConfirmationScript string    `json:"confirmationScript" gorm:"column:confirmation_script;type:text"`
	Language           string    `json:"language" gorm:"size:2"`
	CreatedAt          time.Time `json:"createdAt" gorm:"column:created_at;index"`
}

// CreateOrderInput porte les champs acceptés à la création d'une commande.
// Le script de confirmation est calculé en amont par le handler (il n'est
// jamais régénéré lors des mises à jour).
type CreateOrderInput struct {
	ProductID          string
	CustomerName       string
	CustomerPhone      string
	CustomerAddress    string
	CustomerCity       string
	Notes              string
	Quantity           int
	Status             string
	Language           string
	ConfirmationScript string
}

// OrderUpdate est la mise à jour partielle d'une commande (typiquement le
// statut). Le résultat fusionné est re-validé avant d'être committé.
type OrderUpdate struct {
	CustomerName    *string `json:"customerName"`
	CustomerPhone   *string `json:"customerPhone"`
	CustomerAddress *string `json:"customerAddress"`
	CustomerCity    *string `json:"customerCity"`
	Notes           *string `json:"notes"`
	Quantity        *int    `json:"quantity"`
	Status          *string `json:"status"`
	Language        *string `json:"language"`
}

// Clone retourne une copie de la commande.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	out := *o
	return &out
}
