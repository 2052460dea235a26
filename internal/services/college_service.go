package services

import (
	"fmt"

	"github.com/williamjames2004/sjcaisymposium/internal/models"
	"github.com/williamjames2004/sjcaisymposium/internal/repository"
)

// CollegeInput is one college in an /addcollege batch.
type CollegeInput struct {
	CollegeID string `json:"collegeId"`
	Name      string `json:"name"`
	State     string `json:"state"`
	District  string `json:"district"`
}

// CollegeService manages the invited-college list.
type CollegeService interface {
	AddColleges(inputs []CollegeInput) (int, error)
	ListColleges() ([]*models.College, error)
}

type collegeService struct {
	colleges repository.CollegeRepository
}

func NewCollegeService(colleges repository.CollegeRepository) CollegeService {
	return &collegeService{colleges: colleges}
}

func (s *collegeService) AddColleges(inputs []CollegeInput) (int, error) {
	if len(inputs) == 0 {
		return 0, fmt.Errorf("%w: send a non-empty array of colleges", ErrValidation)
	}
	colleges := make([]*models.College, 0, len(inputs))
	for _, in := range inputs {
		if in.CollegeID == "" || in.Name == "" || in.State == "" || in.District == "" {
			return 0, fmt.Errorf("%w: collegeId, name, state and district are required for every college", ErrValidation)
		}
		colleges = append(colleges, &models.College{
			CollegeID: in.CollegeID,
			Name:      in.Name,
			State:     in.State,
			District:  in.District,
		})
	}
	return s.colleges.CreateMany(colleges)
}

func (s *collegeService) ListColleges() ([]*models.College, error) {
	return s.colleges.List()
}
