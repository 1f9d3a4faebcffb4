package models

// AssetRef identifies an externally stored image. URL is what clients
// render; Handle is the opaque key needed to ask the store to delete it.
type AssetRef struct {
	URL    string `json:"url" db:"url"`
	Handle string `json:"handle" db:"handle"`
}

// Empty reports whether the reference points at nothing.
func (a AssetRef) Empty() bool {
	return a.URL == "" && a.Handle == ""
}
