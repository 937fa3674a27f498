package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/hardcore/accounting/internal/apperrors"
	"github.com/hardcore/accounting/internal/models"
	"github.com/hardcore/accounting/internal/repositories"
	"github.com/hardcore/accounting/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type userInfoMocks struct {
	reader    *services.MockUserReader
	writer    *services.MockUserWriter
	cache     *services.MockUserCache
	converter *services.MockUserInfoP2CConverter
	kafka     *services.MockKafkaWriter
}

func newUserInfoService(ctrl *gomock.Controller) (*services.UserInfoService, userInfoMocks) {
	m := userInfoMocks{
		reader:    services.NewMockUserReader(ctrl),
		writer:    services.NewMockUserWriter(ctrl),
		cache:     services.NewMockUserCache(ctrl),
		converter: services.NewMockUserInfoP2CConverter(ctrl),
		kafka:     services.NewMockKafkaWriter(ctrl),
	}
	return services.NewUserInfoService(m.reader, m.writer, m.cache, m.converter, m.kafka), m
}

func TestUserInfoService_GetUserInfoByUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	row := &models.UserInfoDB{ID: 100, Username: "hardcore", Password: "hash"}
	userInfo := models.UserInfo{ID: 100, Username: "hardcore", Password: "hash"}

	tests := []struct {
		name      string
		mockSetup func(m userInfoMocks)
		want      models.UserInfo
		wantErr   error
	}{
		{
			name: "cache hit",
			mockSetup: func(m userInfoMocks) {
				m.cache.EXPECT().Get(gomock.Any(), int64(100)).Return(&userInfo, nil)
			},
			want: userInfo,
		},
		{
			name: "cache miss reads database and fills cache",
			mockSetup: func(m userInfoMocks) {
				m.cache.EXPECT().Get(gomock.Any(), int64(100)).Return(nil, nil)
				m.reader.EXPECT().GetByID(gomock.Any(), int64(100)).Return(row, nil)
				m.converter.EXPECT().Convert(*row).Return(userInfo)
				m.cache.EXPECT().Set(gomock.Any(), userInfo).Return(nil)
			},
			want: userInfo,
		},
		{
			name: "cache failures are ignored",
			mockSetup: func(m userInfoMocks) {
				m.cache.EXPECT().Get(gomock.Any(), int64(100)).Return(nil, errors.New("redis down"))
				m.reader.EXPECT().GetByID(gomock.Any(), int64(100)).Return(row, nil)
				m.converter.EXPECT().Convert(*row).Return(userInfo)
				m.cache.EXPECT().Set(gomock.Any(), userInfo).Return(errors.New("redis down"))
			},
			want: userInfo,
		},
		{
			name: "not found",
			mockSetup: func(m userInfoMocks) {
				m.cache.EXPECT().Get(gomock.Any(), int64(100)).Return(nil, nil)
				m.reader.EXPECT().GetByID(gomock.Any(), int64(100)).Return(nil, nil)
			},
			wantErr: apperrors.ErrResourceNotFound,
		},
		{
			name: "reader error",
			mockSetup: func(m userInfoMocks) {
				m.cache.EXPECT().Get(gomock.Any(), int64(100)).Return(nil, nil)
				m.reader.EXPECT().GetByID(gomock.Any(), int64(100)).Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newUserInfoService(ctrl)
			tt.mockSetup(m)

			got, err := svc.GetUserInfoByUserID(context.Background(), 100)
			switch {
			case tt.wantErr == apperrors.ErrResourceNotFound:
				assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
				assert.EqualError(t, err, "The related user info for user id 100 is not found")
			case tt.wantErr != nil:
				assert.EqualError(t, err, tt.wantErr.Error())
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestUserInfoService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("successful registration", func(t *testing.T) {
		svc, m := newUserInfoService(ctrl)

		var savedHash string
		m.reader.EXPECT().GetByUsername(gomock.Any(), "hardcore").Return(nil, nil)
		m.writer.EXPECT().Save(gomock.Any(), "hardcore", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, hash string) (int64, error) {
				savedHash = hash
				return 1, nil
			})
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				assert.Len(t, msgs, 1)
				assert.Equal(t, "1", string(msgs[0].Key))

				var event models.UserEvent
				assert.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, models.UserEventRegistered, event.Type)
				assert.Equal(t, int64(1), event.UserID)
				assert.Equal(t, "hardcore", event.Username)
				assert.NotEmpty(t, event.EventID)
				return nil
			})

		got, err := svc.Register(context.Background(), "hardcore", "hardcore")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
		assert.Equal(t, "hardcore", got.Username)
		assert.Equal(t, savedHash, got.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.Password), []byte("hardcore")))
	})

	t.Run("user already exists", func(t *testing.T) {
		svc, m := newUserInfoService(ctrl)

		m.reader.EXPECT().GetByUsername(gomock.Any(), "bob").Return(&models.UserInfoDB{ID: 3}, nil)

		_, err := svc.Register(context.Background(), "bob", "pass")
		assert.ErrorIs(t, err, apperrors.ErrInvalidParameter)
		assert.EqualError(t, err, "The user bob was registered")
	})

	t.Run("duplicate on insert", func(t *testing.T) {
		svc, m := newUserInfoService(ctrl)

		m.reader.EXPECT().GetByUsername(gomock.Any(), "eve").Return(nil, nil)
		m.writer.EXPECT().Save(gomock.Any(), "eve", gomock.Any()).Return(int64(0), repositories.ErrDuplicateUsername)

		_, err := svc.Register(context.Background(), "eve", "pass")
		assert.ErrorIs(t, err, apperrors.ErrInvalidParameter)
	})

	t.Run("password over 72 bytes", func(t *testing.T) {
		svc, m := newUserInfoService(ctrl)

		m.reader.EXPECT().GetByUsername(gomock.Any(), "heidi").Return(nil, nil)

		_, err := svc.Register(context.Background(), "heidi", strings.Repeat("é", 40))
		assert.ErrorIs(t, err, apperrors.ErrInvalidParameter)
		assert.EqualError(t, err, "The password is longer than 72 bytes")
	})

	t.Run("reader error", func(t *testing.T) {
		svc, m := newUserInfoService(ctrl)

		m.reader.EXPECT().GetByUsername(gomock.Any(), "carol").Return(nil, errors.New("db error"))

		_, err := svc.Register(context.Background(), "carol", "pass")
		assert.EqualError(t, err, "db error")
	})

	t.Run("writer error", func(t *testing.T) {
		svc, m := newUserInfoService(ctrl)

		m.reader.EXPECT().GetByUsername(gomock.Any(), "dan").Return(nil, nil)
		m.writer.EXPECT().Save(gomock.Any(), "dan", gomock.Any()).Return(int64(0), errors.New("save error"))

		_, err := svc.Register(context.Background(), "dan", "pass")
		assert.EqualError(t, err, "save error")
	})

	t.Run("publish failure does not fail registration", func(t *testing.T) {
		svc, m := newUserInfoService(ctrl)

		m.reader.EXPECT().GetByUsername(gomock.Any(), "frank").Return(nil, nil)
		m.writer.EXPECT().Save(gomock.Any(), "frank", gomock.Any()).Return(int64(7), nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("kafka error"))

		got, err := svc.Register(context.Background(), "frank", "pass")
		assert.NoError(t, err)
		assert.Equal(t, int64(7), got.ID)
	})

	t.Run("nil kafka writer", func(t *testing.T) {
		reader := services.NewMockUserReader(ctrl)
		writer := services.NewMockUserWriter(ctrl)
		svc := services.NewUserInfoService(reader, writer, nil, nil, nil)

		reader.EXPECT().GetByUsername(gomock.Any(), "grace").Return(nil, nil)
		writer.EXPECT().Save(gomock.Any(), "grace", gomock.Any()).Return(int64(8), nil)

		got, err := svc.Register(context.Background(), "grace", "pass")
		assert.NoError(t, err)
		assert.Equal(t, int64(8), got.ID)
	})
}
