package model

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type Author struct {
	ID        int    `json:"-" db:"id"`
	AuthorUid string `json:"authorUid" db:"author_uid"`
	Name      string `json:"name" db:"name"`
}

type ListAuthors struct {
	Paging `json:",inline"`
	Items  []Author `json:"items"`
}

// AuthorDetail carries the author together with the books it owns.
type AuthorDetail struct {
	Author
	Books []Book `json:"books"`
}

type Book struct {
	ID              int    `json:"-" db:"id"`
	BookUid         string `json:"bookUid" db:"book_uid"`
	Title           string `json:"title" db:"title"`
	AuthorUid       string `json:"authorUid" db:"author_uid"`
	AuthorName      string `json:"authorName" db:"author_name"`
	PublicationYear *int   `json:"publicationYear,omitempty" db:"publication_year"`
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []Book `json:"items"`
}

type Library struct {
	ID         int    `json:"-" db:"id"`
	LibraryUid string `json:"libraryUid" db:"library_uid"`
	Name       string `json:"name" db:"name"`
}

type ListLibraries struct {
	Paging `json:",inline"`
	Items  []Library `json:"items"`
}

// LibraryDetail is a library with its shelved books and, when one
// is assigned, its librarian.
type LibraryDetail struct {
	Library
	Books     []Book     `json:"books"`
	Librarian *Librarian `json:"librarian,omitempty"`
}

type Librarian struct {
	ID           int    `json:"-" db:"id"`
	LibrarianUid string `json:"librarianUid" db:"librarian_uid"`
	Name         string `json:"name" db:"name"`
	LibraryUid   string `json:"libraryUid" db:"library_uid"`
}

// Counts is the catalog summary served by the role dashboards.
type Counts struct {
	Authors    int `json:"authors" db:"authors"`
	Books      int `json:"books" db:"books"`
	Libraries  int `json:"libraries" db:"libraries"`
	Librarians int `json:"librarians" db:"librarians"`
}

type Dashboard struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Counts   Counts `json:"counts"`
}
