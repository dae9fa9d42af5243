package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"eventrix/config"
	"eventrix/infras/otel/mocks"
	userMocks "eventrix/internal/domains/user/mocks"
	"eventrix/internal/domains/user/model"
	"eventrix/internal/domains/user/model/dto"
	"eventrix/internal/domains/user/service"
	cacheMocks "eventrix/shared/cache/mocks"
	"eventrix/shared/constant"
	gModel "eventrix/shared/model"
	"eventrix/shared/timezone"
)

func TestUserService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateUserRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateUserRequest{
				ID:    42,
				Name:  "Alice",
				Email: "alice@example.com",
				Role:  constant.UserRoleOrganizer,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "user id already taken",
			req: dto.CreateUserRequest{
				ID:    42,
				Name:  "Alice",
				Email: "alice@example.com",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "exist check error",
			req: dto.CreateUserRequest{
				ID:    42,
				Name:  "Alice",
				Email: "alice@example.com",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "insert error",
			req: dto.CreateUserRequest{
				ID:    42,
				Name:  "Alice",
				Email: "alice@example.com",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyAccountEmail, "admin@example.com")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	user := model.User{
		ID:    42,
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  constant.UserRoleOrganizer,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "admin@example.com",
			ModifiedBy: "admin@example.com",
		},
	}

	tests := []struct {
		name      string
		id        int64
		setupMock func()
		wantErr   bool
		wantID    int64
	}{
		{
			name: "cache hit",
			id:   42,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			id:   42,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  42,
		},
		{
			name: "user not found",
			id:   99,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{}, nil) // Zero ID means not found
			},
			wantErr: true,
		},
		{
			name: "repository error",
			id:   42,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Get(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantID != 0 {
					assert.Equal(t, tt.wantID, result.ID)
				}
			}
		})
	}
}

func TestUserService_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name         string
		csv          string
		setupMock    func()
		wantErr      bool
		wantImported int
		wantSkipped  int
	}{
		{
			name: "valid rows imported",
			csv: "name,roll_number,email\n" +
				"Alice,42,alice@example.com\n" +
				"Bob,43,bob@example.com\n",
			setupMock: func() {
				mockRepo.EXPECT().
					InsertBulk(gomock.Any(), gomock.Len(2)).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:      false,
			wantImported: 2,
			wantSkipped:  0,
		},
		{
			name: "malformed and duplicate rows skipped",
			csv: "name,roll_number,email\n" +
				"Alice,42,alice@example.com\n" +
				"Broken,not-a-number,broken@example.com\n" +
				"Short,7\n" +
				",44,noname@example.com\n" +
				"Alice,42,alice@example.com\n",
			setupMock: func() {
				mockRepo.EXPECT().
					InsertBulk(gomock.Any(), gomock.Len(1)).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:      false,
			wantImported: 1,
			wantSkipped:  4,
		},
		{
			name: "header only, nothing inserted",
			csv:  "name,roll_number,email\n",
			setupMock: func() {
				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:      false,
			wantImported: 0,
			wantSkipped:  0,
		},
		{
			name: "bulk insert error",
			csv: "name,roll_number,email\n" +
				"Alice,42,alice@example.com\n",
			setupMock: func() {
				mockRepo.EXPECT().
					InsertBulk(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyAccountEmail, "admin@example.com")
			result, err := svc.Import(ctx, strings.NewReader(tt.csv))

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantImported, result.Imported)
			assert.Equal(t, tt.wantSkipped, result.Skipped)
		})
	}
}
