package config

import (
	"context"
	"time"

	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/models"
	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/utils"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeedAdmin bootstraps the back-office admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. It is a no-op when the pair is unset or the user exists.
func SeedAdmin(ctx context.Context) {
	c := Get()
	if c.AdminEmail == "" || c.AdminPassword == "" {
		log.Debug().Msg("admin bootstrap pair not set, skipping seed")
		return
	}

	coll, err := Collection(ctx, "users")
	if err != nil {
		log.Error().Err(err).Msg("admin seed skipped, store unreachable")
		return
	}

	var existing models.User
	err = coll.FindOne(ctx, bson.M{"email": c.AdminEmail}).Decode(&existing)
	if err == nil {
		log.Debug().Str("email", c.AdminEmail).Msg("admin user already exists")
		return
	}
	if err != mongo.ErrNoDocuments {
		log.Error().Err(err).Msg("admin seed lookup failed")
		return
	}

	hashed, err := utils.HashPassword(c.AdminPassword)
	if err != nil {
		log.Error().Err(err).Msg("admin seed failed to hash password")
		return
	}

	admin := models.User{
		Name:        "Administrator",
		Email:       c.AdminEmail,
		Password:    hashed,
		Role:        models.RoleAdmin,
		IsActive:    true,
		Permissions: []string{"*"},
	}
	admin.StampCreate(time.Now())

	if _, err := coll.InsertOne(ctx, admin); err != nil {
		log.Error().Err(err).Msg("admin seed insert failed")
		return
	}
	log.Info().Str("email", c.AdminEmail).Msg("admin user seeded")
}
