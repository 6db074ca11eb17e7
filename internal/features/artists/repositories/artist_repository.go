package artists_repositories

import (
	"time"

	artists_models "marca/internal/features/artists/models"
	"marca/internal/storage"

	"github.com/google/uuid"
)

type ArtistRepository struct{}

var artistRepository = &ArtistRepository{}

func GetArtistRepository() *ArtistRepository {
	return artistRepository
}

func (r *ArtistRepository) CreateArtist(artist *artists_models.Artist) error {
	if artist.ID == uuid.Nil {
		artist.ID = uuid.New()
	}
	if artist.CreatedAt.IsZero() {
		artist.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(artist).Error
}

func (r *ArtistRepository) GetArtistByID(artistID uuid.UUID) (*artists_models.Artist, error) {
	var artist artists_models.Artist

	if err := storage.GetDb().Where("id = ?", artistID).First(&artist).Error; err != nil {
		return nil, err
	}

	return &artist, nil
}

func (r *ArtistRepository) UpdateArtist(artist *artists_models.Artist) error {
	return storage.GetDb().Save(artist).Error
}

func (r *ArtistRepository) DeleteArtist(artistID uuid.UUID) error {
	return storage.GetDb().Delete(&artists_models.Artist{}, artistID).Error
}

func (r *ArtistRepository) GetAllArtists() ([]*artists_models.Artist, error) {
	var artists []*artists_models.Artist

	err := storage.GetDb().Order("created_at DESC").Find(&artists).Error

	return artists, err
}
