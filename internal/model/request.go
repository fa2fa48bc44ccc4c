package model

type CreateAuthorRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type CreateBookRequest struct {
	Title           string `json:"title" validate:"required,max=200"`
	AuthorUid       string `json:"authorUid" validate:"required,uuid"`
	PublicationYear *int   `json:"publicationYear" validate:"omitempty,gte=1000,lte=2100"`
}

type UpdateBookRequest struct {
	Title           string `json:"title" validate:"required,max=200"`
	AuthorUid       string `json:"authorUid" validate:"required,uuid"`
	PublicationYear *int   `json:"publicationYear" validate:"omitempty,gte=1000,lte=2100"`
}

type CreateLibraryRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type CreateLibrarianRequest struct {
	Name       string `json:"name" validate:"required,max=200"`
	LibraryUid string `json:"libraryUid" validate:"required,uuid"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100,alphaspace"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,max=2000"`
}

type Message struct {
	Message string `json:"message"`
}
