package services

import (
	"context"
	"errors"
	"time"

	"github.com/raihanmz/portfolio-backend/internal/models"
	pgrepo "github.com/raihanmz/portfolio-backend/internal/repositories/postgres"
	"github.com/raihanmz/portfolio-backend/internal/revalidate"
	"github.com/raihanmz/portfolio-backend/internal/utils"
)

type ProfileInput struct {
	FullName string
	Title    string
	Bio      string
	Email    string
	Phone    string
	Location string

	GithubURL   string
	LinkedinURL string
	TwitterURL  string
	WebsiteURL  string

	ImageURL string
}

type ProfileService interface {
	Get(ctx context.Context) (*models.Profile, error)
	Upsert(ctx context.Context, in ProfileInput) (*models.Profile, error)
}

type profileService struct {
	profiles pgrepo.ProfileRepository
	reval    *revalidate.Revalidator
}

func NewProfileService(profiles pgrepo.ProfileRepository, reval *revalidate.Revalidator) ProfileService {
	return &profileService{profiles: profiles, reval: reval}
}

func (s *profileService) Get(ctx context.Context) (*models.Profile, error) {
	const op = "ProfileService.Get"

	p, err := s.profiles.Get(ctx)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "profile not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get profile", err)
	}
	return p, nil
}

func (s *profileService) Upsert(ctx context.Context, in ProfileInput) (*models.Profile, error) {
	const op = "ProfileService.Upsert"

	if in.FullName == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "fullName is required", nil)
	}
	if in.Email == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "email is required", nil)
	}
	for _, u := range []struct{ field, val string }{
		{"githubUrl", in.GithubURL},
		{"linkedinUrl", in.LinkedinURL},
		{"twitterUrl", in.TwitterURL},
		{"websiteUrl", in.WebsiteURL},
	} {
		if u.val != "" && !validURL(u.val) {
			return nil, utils.E(utils.CodeInvalidArgument, op, u.field+" is not a valid URL", nil)
		}
	}

	p := &models.Profile{
		ID:          models.DefaultProfileID,
		FullName:    in.FullName,
		Title:       in.Title,
		Bio:         in.Bio,
		Email:       in.Email,
		Phone:       in.Phone,
		Location:    in.Location,
		GithubURL:   in.GithubURL,
		LinkedinURL: in.LinkedinURL,
		TwitterURL:  in.TwitterURL,
		WebsiteURL:  in.WebsiteURL,
		ImageURL:    in.ImageURL,
		UpdatedAt:   time.Now().UTC(),
	}

	// keep the stored image when the save carries none
	if p.ImageURL == "" {
		if existing, err := s.profiles.Get(ctx); err == nil {
			p.ImageURL = existing.ImageURL
		}
	}

	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to upsert profile", err)
	}

	s.reval.Invalidate(ctx, revalidate.PageHome, revalidate.PageAdmin)
	return p, nil
}
