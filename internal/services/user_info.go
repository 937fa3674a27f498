package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/hardcore/accounting/internal/apperrors"
	"github.com/hardcore/accounting/internal/logger"
	"github.com/hardcore/accounting/internal/models"
	"github.com/hardcore/accounting/internal/repositories"
	"github.com/segmentio/kafka-go"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user_info.go -destination=user_info_mock.go -package=services

const maxPasswordBytes = 72

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserInfoDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserInfoDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, password string) (int64, error)
}

// UserCache caches user records by id. Get returns nil on a miss.
type UserCache interface {
	Get(ctx context.Context, id int64) (*models.UserInfo, error)
	Set(ctx context.Context, userInfo models.UserInfo) error
}

// UserInfoP2CConverter maps database rows to user records.
type UserInfoP2CConverter interface {
	Convert(row models.UserInfoDB) models.UserInfo
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// UserInfoService owns lookup and registration of users.
type UserInfoService struct {
	reader      UserReader
	writer      UserWriter
	cache       UserCache
	converter   UserInfoP2CConverter
	kafkaWriter KafkaWriter
}

// NewUserInfoService creates a new UserInfoService instance.
// kafkaWriter may be nil, in which case no events are published.
func NewUserInfoService(
	reader UserReader,
	writer UserWriter,
	cache UserCache,
	converter UserInfoP2CConverter,
	kafkaWriter KafkaWriter,
) *UserInfoService {
	return &UserInfoService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		converter:   converter,
		kafkaWriter: kafkaWriter,
	}
}

// GetUserInfoByUserID returns the user with the given id.
// The cache is consulted first; cache failures never fail the lookup.
func (svc *UserInfoService) GetUserInfoByUserID(ctx context.Context, userID int64) (models.UserInfo, error) {
	cached, err := svc.cache.Get(ctx, userID)
	if err != nil {
		logger.Log.Warnw("failed to read user from cache", "userID", userID, "err", err)
	}
	if cached != nil {
		return *cached, nil
	}

	row, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return models.UserInfo{}, err
	}
	if row == nil {
		return models.UserInfo{}, apperrors.NewResourceNotFoundError(
			"The related user info for user id %d is not found", userID)
	}

	userInfo := svc.converter.Convert(*row)
	if err := svc.cache.Set(ctx, userInfo); err != nil {
		logger.Log.Warnw("failed to cache user", "userID", userID, "err", err)
	}
	return userInfo, nil
}

// Register creates a user with a bcrypt hash of password and returns the stored record.
func (svc *UserInfoService) Register(ctx context.Context, username, password string) (models.UserInfo, error) {
	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "username", username, "err", err)
		return models.UserInfo{}, err
	}
	if existing != nil {
		logger.Log.Infow("user already exists", "username", username)
		return models.UserInfo{}, errUserRegistered(username)
	}

	// bcrypt limits bytes, the request validator limits characters
	if len(password) > maxPasswordBytes {
		return models.UserInfo{}, apperrors.NewInvalidParameterError(
			"The password is longer than %d bytes", maxPasswordBytes)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return models.UserInfo{}, err
	}

	id, err := svc.writer.Save(ctx, username, string(hashedPassword))
	if errors.Is(err, repositories.ErrDuplicateUsername) {
		// lost a race with a concurrent registration
		return models.UserInfo{}, errUserRegistered(username)
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "username", username, "err", err)
		return models.UserInfo{}, err
	}

	userInfo := models.UserInfo{
		ID:       id,
		Username: username,
		Password: string(hashedPassword),
	}
	svc.publishRegistered(ctx, userInfo)
	return userInfo, nil
}

// publishRegistered is best effort: a failed publish never fails the registration.
func (svc *UserInfoService) publishRegistered(ctx context.Context, userInfo models.UserInfo) {
	if svc.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "userID", userInfo.ID)
		return
	}

	event := models.UserEvent{
		EventID:   uuid.NewString(),
		Type:      models.UserEventRegistered,
		UserID:    userInfo.ID,
		Username:  userInfo.Username,
		Timestamp: time.Now().Unix(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal user event", "userID", userInfo.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(userInfo.ID, 10)),
		Value: data,
	}
	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish user event", "userID", userInfo.ID, "error", err)
		return
	}
	logger.Log.Infow("user event published", "userID", userInfo.ID, "event_id", event.EventID)
}

func errUserRegistered(username string) error {
	return apperrors.NewInvalidParameterError("The user %s was registered", username)
}
