package models

import "time"

// Product est un produit analysé par l'IA : une image, un nom et du contenu
// marketing multilingue. Les descriptions portent toujours les trois langues.
type Product struct {
	ID           string        `json:"id" gorm:"primaryKey;size:36"`
	Name         string        `json:"name" gorm:"not null"`
	ImageURL     string        `json:"imageUrl" gorm:"column:image_url"`
	Descriptions LocalizedText `json:"descriptions" gorm:"type:jsonb"`
	Benefits     LocalizedList `json:"benefits" gorm:"type:jsonb"`
	Features     LocalizedList `json:"features" gorm:"type:jsonb"`
	Price        string        `json:"price"`
	Category     string        `json:"category"`
	CreatedAt    time.Time     `json:"createdAt" gorm:"column:created_at;index"`
}

// CreateProductInput porte les champs acceptés à la création. Les champs
// localisés absents sont normalisés par le store ({ar:"",en:"",fr:""} et
// {ar:[],en:[],fr:[]}).
type CreateProductInput struct {
	Name         string        `json:"name" binding:"required"`
	ImageURL     string        `json:"imageUrl"`
	Descriptions LocalizedText `json:"descriptions"`
	Benefits     LocalizedList `json:"benefits"`
	Features     LocalizedList `json:"features"`
	Price        string        `json:"price"`
	Category     string        `json:"category"`
}

// ProductUpdate est la mise à jour partielle d'un produit : seuls les champs
// non nil sont appliqués, puis l'invariant des trois langues est re-vérifié.
type ProductUpdate struct {
	Name         *string       `json:"name"`
	ImageURL     *string       `json:"imageUrl"`
	Descriptions LocalizedText `json:"descriptions"`
	Benefits     LocalizedList `json:"benefits"`
	Features     LocalizedList `json:"features"`
	Price        *string       `json:"price"`
	Category     *string       `json:"category"`
}

// Clone retourne une copie profonde. Le store ne rend jamais ses instances
// internes aux appelants.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	out := *p
	out.Descriptions = p.Descriptions.Normalized()
	out.Benefits = p.Benefits.Normalized()
	out.Features = p.Features.Normalized()
	return &out
}

// Description retourne la description dans la langue demandée.
func (p *Product) Description(lang string) string {
	return p.Descriptions[lang]
}
