package favorites

import (
	"time"

	"github.com/m04kA/SMC-MedicalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
)

// AddFavoriteRequest тело POST /favoris/
type AddFavoriteRequest struct {
	ProfessionalID int64 `json:"professionnel_id"`
}

// FavoriteResponse избранный специалист
type FavoriteResponse struct {
	ProfessionalID int64                          `json:"professionnel_id"`
	AddedAt        time.Time                      `json:"date_ajout"`
	Professional   *handlers.ProfessionalResponse `json:"professionnel,omitempty"`
}

func FromFavorite(f *domain.Favorite) FavoriteResponse {
	resp := FavoriteResponse{
		ProfessionalID: f.ProfessionalID,
		AddedAt:        f.AddedAt,
	}
	if f.Professional != nil {
		pro := handlers.FromProfessional(f.Professional)
		resp.Professional = &pro
	}
	return resp
}

func FromFavorites(list []*domain.Favorite) []FavoriteResponse {
	result := make([]FavoriteResponse, 0, len(list))
	for _, f := range list {
		result = append(result, FromFavorite(f))
	}
	return result
}
