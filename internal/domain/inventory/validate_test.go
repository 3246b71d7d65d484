package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validPainting() Painting {
	return Painting{
		Title:      "Senja di Merapi",
		Theme:      "Pemandangan",
		Price:      1500000,
		Status:     StatusAvailable,
		PhotoPaths: PhotoList{"data:image/jpeg;base64,abc"},
	}
}

func TestValidatePaintingOK(t *testing.T) {
	assert.Empty(t, ValidatePainting(validPainting()))
}

func TestValidatePaintingMissingTitle(t *testing.T) {
	p := validPainting()
	p.Title = "   "
	v := ValidatePainting(p)
	assert.Contains(t, v, "title")
}

func TestValidatePaintingNoPhotos(t *testing.T) {
	p := validPainting()
	p.PhotoPaths = PhotoList{}
	v := ValidatePainting(p)
	assert.Contains(t, v, "photoPaths")

	p.PhotoPaths = nil
	assert.Contains(t, ValidatePainting(p), "photoPaths")
}

func TestValidatePaintingNegativePrice(t *testing.T) {
	p := validPainting()
	p.Price = -1
	assert.Contains(t, ValidatePainting(p), "price")
}

func TestValidatePaintingBadStatus(t *testing.T) {
	p := validPainting()
	p.Status = "Gone"
	assert.Contains(t, ValidatePainting(p), "status")
}

func TestValidateProject(t *testing.T) {
	assert.Empty(t, ValidateProject(Project{Name: "Hotel Bintang 5"}))
	assert.Contains(t, ValidateProject(Project{Name: ""}), "name")
	// totalNeeded 0 means "unspecified" and is valid
	assert.Empty(t, ValidateProject(Project{Name: "Lobby", TotalNeeded: 0}))
}

func TestStatusValues(t *testing.T) {
	// wire values are fixed by the backup format
	assert.Equal(t, "Under Contract", string(StatusUnderContract))
	for _, s := range Statuses() {
		assert.True(t, s.Valid())
	}
	assert.False(t, Status("").Valid())
}
