package stylists

import (
	"context"
	"cosmek-web/internal/app/contracts"
	"cosmek-web/internal/app/models"
	"cosmek-web/internal/pkg/constvars"
	"cosmek-web/internal/pkg/dto/requests"
	"cosmek-web/internal/pkg/dto/responses"
	"cosmek-web/internal/pkg/exceptions"
	"cosmek-web/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type stylistUsecase struct {
	StylistClient     contracts.StylistClient
	AppointmentClient contracts.AppointmentClient
	RedisRepository   contracts.RedisRepository
	CacheTTL          time.Duration
	Location          *time.Location
	Log               *zap.Logger
}

// NewStylistUsecase builds the stylist use cases. redisRepository may be nil,
// in which case the stylist list is always fetched from the salon API.
func NewStylistUsecase(
	stylistClient contracts.StylistClient,
	appointmentClient contracts.AppointmentClient,
	redisRepository contracts.RedisRepository,
	cacheTTL time.Duration,
	location *time.Location,
	logger *zap.Logger,
) contracts.StylistUsecase {
	return &stylistUsecase{
		StylistClient:     stylistClient,
		AppointmentClient: appointmentClient,
		RedisRepository:   redisRepository,
		CacheTTL:          cacheTTL,
		Location:          location,
		Log:               logger,
	}
}

func (uc *stylistUsecase) cacheEnabled() bool {
	return uc.RedisRepository != nil && uc.CacheTTL > 0
}

func (uc *stylistUsecase) ListStylists(ctx context.Context) ([]responses.Stylist, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("stylistUsecase.ListStylists called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if cached, ok := uc.cachedStylists(ctx, requestID); ok {
		return cached, nil
	}

	stylists, err := uc.StylistClient.FindAll(ctx)
	if err != nil {
		uc.Log.Error("stylistUsecase.ListStylists error fetching stylists",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if stylists == nil {
		stylists = []responses.Stylist{}
	}

	if uc.cacheEnabled() {
		if err := uc.RedisRepository.Set(ctx, constvars.CacheKeyStylistList, stylists, uc.CacheTTL); err != nil {
			uc.Log.Warn("stylistUsecase.ListStylists error caching stylists",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	uc.Log.Info("stylistUsecase.ListStylists succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(stylists)),
	)
	return stylists, nil
}

// cachedStylists never fails the caller. A cache miss, an unreachable Redis
// and an undecodable entry all fall through to the salon API.
func (uc *stylistUsecase) cachedStylists(ctx context.Context, requestID string) ([]responses.Stylist, bool) {
	if !uc.cacheEnabled() {
		return nil, false
	}

	data, err := uc.RedisRepository.Get(ctx, constvars.CacheKeyStylistList)
	if err != nil {
		uc.Log.Warn("stylistUsecase.ListStylists error reading cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, false
	}
	if data == "" {
		return nil, false
	}

	var stylists []responses.Stylist
	if err := json.Unmarshal([]byte(data), &stylists); err != nil {
		uc.Log.Warn("stylistUsecase.ListStylists error decoding cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, false
	}
	return stylists, true
}

func (uc *stylistUsecase) GetStylistProfile(ctx context.Context, stylistID int) (*responses.StylistProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("stylistUsecase.GetStylistProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStylistIDKey, stylistID),
	)

	stylist, err := uc.StylistClient.FindByID(ctx, stylistID)
	if err != nil {
		uc.Log.Error("stylistUsecase.GetStylistProfile error fetching stylist",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	appointments, err := uc.AppointmentClient.FindAll(ctx)
	if err != nil {
		uc.Log.Error("stylistUsecase.GetStylistProfile error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.BuildNewCustomError(err, exceptions.StatusCode(err), constvars.ErrClientLoadStylistDetails, constvars.ErrDevServerProcess)
	}

	profile := &responses.StylistProfile{
		Stylist:  *stylist,
		Upcoming: []responses.AppointmentCard{},
		Past:     []responses.AppointmentCard{},
	}
	for _, appointment := range appointments {
		if appointment.Stylist.ID != stylistID {
			continue
		}
		status := models.AppointmentStatus(appointment.Status)
		switch {
		case status == models.AppointmentStatusScheduled:
			profile.Upcoming = append(profile.Upcoming, utils.BuildAppointmentCard(appointment, uc.Location))
		case status.IsPast():
			profile.Past = append(profile.Past, utils.BuildAppointmentCard(appointment, uc.Location))
		}
	}

	uc.Log.Info("stylistUsecase.GetStylistProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStylistIDKey, stylistID),
	)
	return profile, nil
}

func (uc *stylistUsecase) CreateStylist(ctx context.Context, request *requests.CreateStylist) (*responses.Stylist, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("stylistUsecase.CreateStylist called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	stylist, err := uc.StylistClient.Create(ctx, request)
	if err != nil {
		uc.Log.Error("stylistUsecase.CreateStylist error creating stylist",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if uc.RedisRepository != nil {
		if err := uc.RedisRepository.Delete(ctx, constvars.CacheKeyStylistList); err != nil {
			uc.Log.Warn("stylistUsecase.CreateStylist error invalidating cache",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	uc.Log.Info("stylistUsecase.CreateStylist succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStylistIDKey, stylist.ID),
	)
	return stylist, nil
}
