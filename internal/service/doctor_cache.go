package service

import (
	"context"
	"encoding/json"
	"time"

	"medical-clinic-api/internal/delivery/dto"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const doctorCacheKeyPrefix = "doctor:email:"

// DoctorCache is a read-through cache of doctor responses keyed by email.
// Every error is treated as a miss: the database stays the source of truth
// and an unreachable Redis only costs the lookup.
type DoctorCache struct {
	client *redis.Client
	log    *logrus.Logger
	ttl    time.Duration
}

func NewDoctorCache(client *redis.Client, log *logrus.Logger, ttl time.Duration) *DoctorCache {
	return &DoctorCache{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

func (c *DoctorCache) Get(ctx context.Context, email string) *dto.DoctorResponse {
	payload, err := c.client.Get(ctx, doctorCacheKeyPrefix+email).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Debugf("Doctor cache read failed for %s: %+v", email, err)
		}
		return nil
	}

	var doctor dto.DoctorResponse
	if err := json.Unmarshal(payload, &doctor); err != nil {
		c.log.Warnf("Doctor cache holds invalid payload for %s: %+v", email, err)
		return nil
	}
	return &doctor
}

func (c *DoctorCache) Set(ctx context.Context, doctor *dto.DoctorResponse) {
	if doctor == nil {
		return
	}
	payload, err := json.Marshal(doctor)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, doctorCacheKeyPrefix+doctor.Email, payload, c.ttl).Err(); err != nil {
		c.log.Debugf("Doctor cache write failed for %s: %+v", doctor.Email, err)
	}
}

// Invalidate drops the cache entries for the given emails. Called on edit
// (old and new email) and on delete.
func (c *DoctorCache) Invalidate(ctx context.Context, emails ...string) {
	keys := make([]string, len(emails))
	for i, email := range emails {
		keys[i] = doctorCacheKeyPrefix + email
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Debugf("Doctor cache invalidation failed: %+v", err)
	}
}
