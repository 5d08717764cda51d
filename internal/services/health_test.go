package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-rates-dashboard/internal/models"
)

func TestHealthService_PartialOutage(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prober := NewMockHealthProber(ctrl)
	settings := NewMockSettingsReader(ctrl)
	svc := NewHealthService(prober, settings)

	// analytics не настроен, пробы идут только по двум базам
	s := models.Settings{RatesURL: "http://rates", ProfileURL: "http://profile"}
	settings.EXPECT().Get(ctx).Return(s, nil)
	prober.EXPECT().Health(ctx, "http://rates").Return(nil)
	prober.EXPECT().Health(ctx, "http://profile").Return(errors.New("connection refused"))

	report, err := svc.TestConnections(ctx)
	require.NoError(t, err)

	assert.Equal(t, "OK: 1/2", report.Summary)
	assert.Equal(t, 1, report.OK)
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, "unreachable: profile", report.Warning)

	require.Len(t, report.Probes, 2)
	assert.Equal(t, "rates", report.Probes[0].Service)
	assert.True(t, report.Probes[0].OK)
	assert.Equal(t, "profile", report.Probes[1].Service)
	assert.False(t, report.Probes[1].OK)
	assert.Equal(t, "connection refused", report.Probes[1].Error)
}

func TestHealthService_AllHealthy(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prober := NewMockHealthProber(ctrl)
	settings := NewMockSettingsReader(ctrl)
	svc := NewHealthService(prober, settings)

	s := models.Settings{
		RatesURL:     "http://rates",
		AnalyticsURL: "http://analytics",
		ProfileURL:   "http://profile",
	}
	settings.EXPECT().Get(ctx).Return(s, nil)
	prober.EXPECT().Health(ctx, "http://rates").Return(nil)
	prober.EXPECT().Health(ctx, "http://analytics").Return(nil)
	prober.EXPECT().Health(ctx, "http://profile").Return(nil)

	report, err := svc.TestConnections(ctx)
	require.NoError(t, err)

	assert.Equal(t, "OK: 3/3", report.Summary)
	assert.Empty(t, report.Warning)
}

func TestHealthService_SettingsError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prober := NewMockHealthProber(ctrl)
	settings := NewMockSettingsReader(ctrl)
	svc := NewHealthService(prober, settings)

	settings.EXPECT().Get(ctx).Return(models.Settings{}, errors.New("db closed"))

	report, err := svc.TestConnections(ctx)
	require.Error(t, err)
	assert.Nil(t, report)
}

func TestHealthService_TestSettingsUnsaved(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prober := NewMockHealthProber(ctrl)
	settings := NewMockSettingsReader(ctrl)
	svc := NewHealthService(prober, settings)

	// кандидатные настройки проверяются без чтения из хранилища
	s := models.Settings{RatesURL: "http://candidate"}
	prober.EXPECT().Health(ctx, "http://candidate").Return(nil)

	report := svc.TestSettings(ctx, s)
	assert.Equal(t, "OK: 1/1", report.Summary)
	require.Len(t, report.Probes, 1)
	assert.Equal(t, "http://candidate", report.Probes[0].BaseURL)
}
