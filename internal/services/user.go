package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"intranet-portal/internal/dto"
	"intranet-portal/internal/entities"
	"intranet-portal/internal/repositories"
	"intranet-portal/pkg/filestorage"
	"intranet-portal/pkg/utils"
)

const userPhotoPrefix = "users"

type UserServiceInterface interface {
	GetUsers(ctx context.Context) ([]*entities.User, error)
	FindUser(ctx context.Context, id uint64) (*entities.User, error)
	GetOrgChart(ctx context.Context) (*dto.OrgChartDTO, error)
	CreateUser(ctx context.Context, payload dto.CreateUserDTO, photo *multipart.FileHeader) (*dto.CreatedUserDTO, error)
	UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO, photo *multipart.FileHeader) error
	DeleteUser(ctx context.Context, id uint64) error
}

type UserService struct {
	storage     *pgxpool.Pool
	userRepo    repositories.UserRepositoryInterface
	fileStorage filestorage.FileStorageInterface
	logger      *zap.Logger
}

func NewUserService(
	storage *pgxpool.Pool,
	userRepo repositories.UserRepositoryInterface,
	fileStorage filestorage.FileStorageInterface,
	logger *zap.Logger,
) UserServiceInterface {
	return &UserService{
		storage:     storage,
		userRepo:    userRepo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

func (s *UserService) GetUsers(ctx context.Context) ([]*entities.User, error) {
	return s.userRepo.GetAll(ctx)
}

func (s *UserService) FindUser(ctx context.Context, id uint64) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Ошибка при поиске пользователя", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetOrgChart(ctx context.Context) (*dto.OrgChartDTO, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Ошибка при загрузке пользователей для оргструктуры", zap.Error(err))
		return nil, err
	}
	return BuildOrgChart(users), nil
}

func (s *UserService) savePhoto(photo *multipart.FileHeader) (string, error) {
	if photo == nil {
		return "", nil
	}
	src, err := photo.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	return s.fileStorage.Save(src, photo.Filename, userPhotoPrefix)
}

func (s *UserService) buildEntity(payload dto.CreateUserDTO) (entities.User, error) {
	birthDate, err := time.Parse("2006-01-02", payload.BirthDate)
	if err != nil {
		return entities.User{}, err
	}
	employmentDate, err := time.Parse("2006-01-02", payload.EmploymentDate)
	if err != nil {
		return entities.User{}, err
	}

	u := entities.User{
		Email:          payload.Email,
		Name:           payload.Name,
		Telegram:       payload.Telegram,
		Role:           payload.Role,
		IsOwner:        payload.IsOwner,
		Email1:         payload.Email1,
		Email2:         payload.Email2,
		BirthDate:      birthDate,
		EmploymentDate: employmentDate,
	}
	if payload.GroupNumber.Valid {
		n := int(payload.GroupNumber.Int)
		u.GroupNumber = &n
	}
	return u, nil
}

func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO, photo *multipart.FileHeader) (*dto.CreatedUserDTO, error) {
	user, err := s.buildEntity(payload)
	if err != nil {
		s.logger.Error("Ошибка при разборе дат пользователя", zap.Error(err))
		return nil, err
	}

	hashed, err := utils.HashPassword(payload.Password)
	if err != nil {
		s.logger.Error("Ошибка при хешировании пароля", zap.Error(err))
		return nil, err
	}
	user.Password = hashed

	photoURL, err := s.savePhoto(photo)
	if err != nil {
		s.logger.Error("Ошибка при сохранении фото", zap.Error(err))
		return nil, err
	}
	user.Photo = photoURL

	var newID uint64
	err = repositories.WithTx(ctx, s.storage, func(tx pgx.Tx) error {
		newID, err = s.userRepo.Create(ctx, tx, user, payload.Positions)
		return err
	})
	if err != nil {
		s.logger.Error("Ошибка при создании пользователя", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Пользователь создан", zap.Uint64("id", newID), zap.String("email", user.Email))
	return &dto.CreatedUserDTO{ID: newID, Email: user.Email, Name: user.Name, Role: user.Role}, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO, photo *multipart.FileHeader) error {
	current, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	user := *current
	if payload.Email != nil {
		user.Email = *payload.Email
	}
	if payload.Name != nil {
		user.Name = *payload.Name
	}
	if payload.Telegram != nil {
		user.Telegram = *payload.Telegram
	}
	if payload.Role != nil {
		user.Role = *payload.Role
	}
	if payload.Email1 != nil {
		user.Email1 = *payload.Email1
	}
	if payload.Email2 != nil {
		user.Email2 = *payload.Email2
	}
	if payload.GroupNumber.Valid {
		n := int(payload.GroupNumber.Int)
		user.GroupNumber = &n
	}
	if payload.IsOwner != nil {
		user.IsOwner = *payload.IsOwner
	}
	if payload.BirthDate != nil {
		birthDate, err := time.Parse("2006-01-02", *payload.BirthDate)
		if err != nil {
			return err
		}
		user.BirthDate = birthDate
	}
	if payload.EmploymentDate != nil {
		employmentDate, err := time.Parse("2006-01-02", *payload.EmploymentDate)
		if err != nil {
			return err
		}
		user.EmploymentDate = employmentDate
	}
	if payload.Password != nil {
		hashed, err := utils.HashPassword(*payload.Password)
		if err != nil {
			return err
		}
		user.Password = hashed
	}

	if photo != nil {
		photoURL, err := s.savePhoto(photo)
		if err != nil {
			s.logger.Error("Ошибка при сохранении фото", zap.Error(err))
			return err
		}
		if current.Photo != "" {
			if delErr := s.fileStorage.Delete(current.Photo); delErr != nil {
				s.logger.Warn("Не удалось удалить старое фото", zap.String("photo", current.Photo), zap.Error(delErr))
			}
		}
		user.Photo = photoURL
	}

	err = repositories.WithTx(ctx, s.storage, func(tx pgx.Tx) error {
		return s.userRepo.Update(ctx, tx, id, user, payload.Positions)
	})
	if err != nil {
		s.logger.Error("Ошибка при обновлении пользователя", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint64) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Ошибка при удалении пользователя", zap.Uint64("id", id), zap.Error(err))
		return err
	}

	if user.Photo != "" {
		if delErr := s.fileStorage.Delete(user.Photo); delErr != nil {
			s.logger.Warn("Не удалось удалить фото пользователя", zap.String("photo", user.Photo), zap.Error(delErr))
		}
	}
	return nil
}
