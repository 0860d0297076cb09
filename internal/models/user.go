package models

// User est une entité héritée du schéma d'origine. Aucun flux
// d'authentification ne la consomme pour l'instant.
type User struct {
	ID       string `json:"id" gorm:"primaryKey;size:36"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
}

// CreateUserInput porte les champs requis à la création d'un utilisateur.
type CreateUserInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
