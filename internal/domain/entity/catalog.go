package entity

// CatalogKind names one of the attribute vocabularies used as input suggestions.
type CatalogKind string

const (
	CatalogCategories CatalogKind = "categories"
	CatalogSizes      CatalogKind = "sizes"
	CatalogColors     CatalogKind = "colors"
	CatalogOthers     CatalogKind = "others"
)

// ParseCatalogKind validates a kind coming from outside (URL, config).
func ParseCatalogKind(s string) (CatalogKind, bool) {
	switch k := CatalogKind(s); k {
	case CatalogCategories, CatalogSizes, CatalogColors, CatalogOthers:
		return k, true
	}
	return "", false
}

// Catalogs groups the four independent vocabularies. No cross-references are enforced:
// removing a category leaves items tagged with it untouched.
type Catalogs struct {
	Categories []string
	Sizes      []string
	Colors     []string
	Others     []string
}

// List returns the values of one kind.
func (c Catalogs) List(kind CatalogKind) []string {
	switch kind {
	case CatalogCategories:
		return c.Categories
	case CatalogSizes:
		return c.Sizes
	case CatalogColors:
		return c.Colors
	case CatalogOthers:
		return c.Others
	}
	return nil
}

// With returns a copy of c with the list of one kind replaced.
func (c Catalogs) With(kind CatalogKind, values []string) Catalogs {
	switch kind {
	case CatalogCategories:
		c.Categories = values
	case CatalogSizes:
		c.Sizes = values
	case CatalogColors:
		c.Colors = values
	case CatalogOthers:
		c.Others = values
	}
	return c
}
