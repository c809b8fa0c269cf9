// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/access"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/mock"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/utils"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPageAccessSvc(ctrl *gomock.Controller) (PageAccessService, *mock.MockAuthService, *mock.MockProfileService) {
	authSvc := mock.NewMockAuthService(ctrl)
	profileSvc := mock.NewMockProfileService(ctrl)

	return NewPageAccessService(authSvc, profileSvc, access.NewPolicy(access.DefaultRouteTable())), authSvc, profileSvc
}

func TestPageAccessService_ResolveSession_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestPageAccessSvc(ctrl)

	state := svc.ResolveSession(context.Background(), "")
	assert.False(t, state.IsPending())
	assert.Nil(t, state.User())
}

func TestPageAccessService_ResolveSession_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, authSvc, _ := newTestPageAccessSvc(ctrl)

	authSvc.EXPECT().ParseToken(gomock.Any(), "bad").Return(models.SessionClaims{}, ErrUnauthorized)

	state := svc.ResolveSession(context.Background(), "bad")
	assert.False(t, state.IsPending())
	assert.Nil(t, state.User())
}

func TestPageAccessService_ResolveSession_UserGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, authSvc, profileSvc := newTestPageAccessSvc(ctrl)

	authSvc.EXPECT().ParseToken(gomock.Any(), "tok").Return(models.SessionClaims{UserID: 7}, nil)
	profileSvc.EXPECT().GetProfile(gomock.Any(), int64(7)).Return(models.User{}, ErrUserNotFound)

	assert.Nil(t, svc.ResolveSession(context.Background(), "tok").User())
}

func TestPageAccessService_ResolveSession_SignedIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, authSvc, profileSvc := newTestPageAccessSvc(ctrl)

	user := activeUser()
	user.Roles = []string{models.RoleCustomer, models.RoleAdmin}

	authSvc.EXPECT().ParseToken(gomock.Any(), "tok").Return(models.SessionClaims{UserID: 7}, nil)
	profileSvc.EXPECT().GetProfile(gomock.Any(), int64(7)).Return(user, nil)

	state := svc.ResolveSession(context.Background(), "tok")
	require.NotNil(t, state.User())
	assert.Equal(t, int64(7), state.User().ID)
	assert.True(t, state.User().HasRole(models.RoleAdmin))

	assert.Equal(t, access.Allow, svc.Decide("/admin/orders", state).Outcome)
	assert.Equal(t, access.RedirectToLanding, svc.Decide("/login", state).Outcome)
}

func TestPageAccessService_Decide_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestPageAccessSvc(ctrl)

	state := svc.ResolveSession(context.Background(), "")

	got := svc.Decide("/account/orders", state)
	assert.Equal(t, access.RedirectToLogin, got.Outcome)
	assert.Equal(t, "/login?redirect=%2Faccount%2Forders", got.Location)

	assert.Equal(t, access.RedirectToHome, svc.Decide("/admin/", state).Outcome)
	assert.Equal(t, access.Allow, svc.Decide("/shop/", state).Outcome)
}

func TestPageAccessService_EndToEndWithRealAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	authSvc, _, _ := newTestAuthSvc(t, ctrl)
	profileSvc := mock.NewMockProfileService(ctrl)
	svc := NewPageAccessService(authSvc, profileSvc, access.NewPolicy(access.DefaultRouteTable()))

	token, err := utils.IssueSessionToken(7, "ann@example.com", testSignKey, testNow)
	require.NoError(t, err)

	profileSvc.EXPECT().GetProfile(gomock.Any(), int64(7)).Return(activeUser(), nil)

	state := svc.ResolveSession(context.Background(), token.String())
	require.NotNil(t, state.User())
	assert.Equal(t, "ann@example.com", state.User().Email)
}

func TestPageAccessService_NeedsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestPageAccessSvc(ctrl)

	assert.True(t, svc.NeedsSession("/admin/orders"))
	assert.True(t, svc.NeedsSession("/account/settings"))
	assert.True(t, svc.NeedsSession("/login"))
	assert.False(t, svc.NeedsSession("/static/app.js"))
	assert.False(t, svc.NeedsSession("/"))
}
