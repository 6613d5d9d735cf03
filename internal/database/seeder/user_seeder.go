package seeder

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"campus-start/internal/database"
	"campus-start/internal/domain/user"
)

const demoPassword = "password123"

type UserSeeder struct{}

func (UserSeeder) Name() string { return "users" }

func (UserSeeder) Run(ctx context.Context, db database.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	demo := []struct {
		Username  string
		Name      string
		Institute string
		Headline  string
		Role      user.Role
		Skills    []string
		Interests []string
	}{
		{
			Username:  "arjun_builds",
			Name:      "Arjun Mehta",
			Institute: "IIT Delhi",
			Headline:  "Backend tinkerer, hackathon regular",
			Role:      user.RoleDeveloper,
			Skills:    []string{"Go", "PostgreSQL", "Docker"},
			Interests: []string{"fintech", "devtools"},
		},
		{
			Username:  "priya_designs",
			Name:      "Priya Sharma",
			Institute: "NID Ahmedabad",
			Headline:  "Product designer who ships",
			Role:      user.RoleDesigner,
			Skills:    []string{"Figma", "React", "Illustration"},
			Interests: []string{"edtech", "accessibility"},
		},
		{
			Username:  "rahul_founder",
			Name:      "Rahul Verma",
			Institute: "BITS Pilani",
			Headline:  "Second-time founder, campus logistics",
			Role:      user.RoleFounder,
			Skills:    []string{"Product", "Sales"},
			Interests: []string{"logistics", "marketplaces"},
		},
		{
			Username:  "sneha_growth",
			Name:      "Sneha Iyer",
			Institute: "IIM Bangalore",
			Headline:  "Growth and community",
			Role:      user.RoleMarketer,
			Skills:    []string{"SEO", "Content", "Analytics"},
			Interests: []string{"consumer", "creator economy"},
		},
		{
			Username:  "vikram_research",
			Name:      "Vikram Nair",
			Institute: "IISc Bangalore",
			Headline:  "ML researcher, recommender systems",
			Role:      user.RoleResearcher,
			Skills:    []string{"Python", "PyTorch", "NLP"},
			Interests: []string{"ai", "healthtech"},
		},
	}

	for _, d := range demo {
		_, err := db.Exec(ctx,
			`INSERT INTO users (
				username, email, password_hash, profile_name, institute_name,
				headline, role, skills, interests, match_profile_text
			)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8::text[],$9::text[],$10)
			ON CONFLICT (username) DO NOTHING`,
			d.Username,
			d.Username+"@campus.dev",
			string(hash),
			d.Name,
			d.Institute,
			d.Headline,
			string(d.Role),
			d.Skills,
			d.Interests,
			user.BuildMatchProfileText(d.Skills, d.Interests, d.Role, d.Headline),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
