package web

import (
	"html"
	"net/http"
	"net/url"
	"testing"
	"time"

	"pharmacygo/internal/adapters/in/http/session"
	"pharmacygo/internal/core/application/usecases/commands"
	"pharmacygo/internal/core/application/usecases/queries"
	"pharmacygo/internal/core/domain/model/identity"
	"pharmacygo/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seeded() *MockSeed {
	seed := &MockSeed{}
	seed.On("Handle", mock.Anything, mock.AnythingOfType("commands.SeedRecordsCommand")).Return(nil)
	return seed
}

func TestShowLogin_RendersRoleChoices(t *testing.T) {
	seed := seeded()
	app := newTestApp(t, Deps{Seed: seed})

	rec := app.get(LoginPath)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Access · PharmacyGo")
	assert.Contains(t, body, "Pharmacy store")
	assert.Contains(t, body, `value="distributor"`)
	assert.Contains(t, body, "Guest")
	assert.Contains(t, body, "© 2026 PharmacyGo")
	seed.AssertExpectations(t)
}

func TestShowLogin_SignedInGoesToDashboard(t *testing.T) {
	app := newTestApp(t, Deps{})
	app.principal = &session.Principal{AccountID: kernel.NewUUID(), Role: identity.Pharmacy, DisplayName: "Nika"}

	rec := app.get(LoginPath)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, PharmacyStoreDashboardPath, rec.Header().Get("Location"))
}

func TestLogin_OpensSessionAndRedirects(t *testing.T) {
	account, err := identity.NewAccount(kernel.NewUUID(), identity.Admin, "Dilnoza Rakhimova",
		"ops@pharmacygo.uz", "", "PharmacyGo", "hash", time.Now().UTC())
	require.NoError(t, err)

	auth := &MockAuthenticator{}
	auth.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.AuthenticateQuery) bool {
		return q.Identifier() == "ops@pharmacygo.uz" && q.RoleHint() == identity.Admin
	})).Return(account, nil)

	app := newTestApp(t, Deps{Seed: seeded(), Authenticate: auth})

	rec := app.post(LoginPath, url.Values{
		"username":  {" ops@pharmacygo.uz "},
		"password":  {"s3cure-pass"},
		"role_hint": {"admin"},
	}, "")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, AdminDashboardPath, rec.Header().Get("Location"))
	assert.True(t, hasCookie(rec, session.CookieName))
	assert.Equal(t, 1, app.store.count())
	auth.AssertExpectations(t)
}

func TestLogin_ShowsAuthenticationErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{
			name:    "invalid credentials",
			err:     queries.ErrInvalidCredentials,
			message: "Invalid credentials. Check your email/phone and password.",
		},
		{
			name:    "role mismatch",
			err:     &queries.RoleMismatchError{Selected: identity.Admin, Actual: identity.Customer},
			message: "You selected Admin but this account is Customer.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &MockAuthenticator{}
			auth.On("Handle", mock.Anything, mock.Anything).Return(nil, tt.err)
			app := newTestApp(t, Deps{Seed: seeded(), Authenticate: auth})

			rec := app.post(LoginPath, url.Values{
				"username":  {"+998901234567"},
				"password":  {"wrong-pass"},
				"role_hint": {"admin"},
			}, "")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, html.UnescapeString(rec.Body.String()), tt.message)
			assert.Contains(t, rec.Body.String(), `value="&#43;998901234567"`)
			assert.False(t, hasCookie(rec, session.CookieName))
		})
	}
}

func TestLogin_RequiresFields(t *testing.T) {
	auth := &MockAuthenticator{}
	app := newTestApp(t, Deps{Seed: seeded(), Authenticate: auth})

	rec := app.post(LoginPath, url.Values{"role_hint": {"customer"}}, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "This field is required.")
	auth.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func signUpValues() url.Values {
	return url.Values{
		"role":      {"customer"},
		"full_name": {"Laylo Karimova"},
		"phone":     {"+998901112233"},
		"password1": {"s3cure-pass"},
		"password2": {"s3cure-pass"},
	}
}

func TestSignUp_CreatesAccountAndSignsIn(t *testing.T) {
	signUp := &MockSignUp{}
	signUp.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.SignUpCommand) bool {
		return cmd.Role() == identity.Customer && cmd.Identifier() == "+998901112233"
	})).Return(nil)
	app := newTestApp(t, Deps{SignUp: signUp})

	rec := app.post(SignUpPath, signUpValues(), "")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, CustomerDashboardPath, rec.Header().Get("Location"))
	assert.True(t, hasCookie(rec, session.CookieName))
	assert.Equal(t, []Flash{{Level: FlashSuccess, Message: msgWelcome}}, flashesOf(t, rec))
	signUp.AssertExpectations(t)
}

func TestSignUp_ShowsTakenIdentifier(t *testing.T) {
	signUp := &MockSignUp{}
	signUp.On("Handle", mock.Anything, mock.Anything).
		Return(commands.FieldErrors{"phone": {commands.MsgAccountExists}})
	app := newTestApp(t, Deps{SignUp: signUp})

	rec := app.post(SignUpPath, signUpValues(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), commands.MsgAccountExists)
	assert.Contains(t, rec.Body.String(), `value="Laylo Karimova"`)
	assert.False(t, hasCookie(rec, session.CookieName))
}

func TestSignUp_ReportsEveryFormProblem(t *testing.T) {
	signUp := &MockSignUp{}
	app := newTestApp(t, Deps{SignUp: signUp})

	values := signUpValues()
	values.Set("full_name", "")
	values.Set("password2", "other-pass")

	rec := app.post(SignUpPath, values, "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, commands.MsgFullNameRequired)
	assert.Contains(t, body, commands.MsgPasswordsMismatch)
	signUp.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestSignUp_RequiresPasswordConfirmation(t *testing.T) {
	signUp := &MockSignUp{}
	app := newTestApp(t, Deps{SignUp: signUp})

	values := signUpValues()
	values.Set("password2", "")

	rec := app.post(SignUpPath, values, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), commands.MsgConfirmRequired)
	assert.False(t, hasCookie(rec, session.CookieName))
	signUp.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestSignUp_RejectsMalformedEmail(t *testing.T) {
	app := newTestApp(t, Deps{SignUp: &MockSignUp{}})

	values := signUpValues()
	values.Set("email", "not-an-email")

	rec := app.post(SignUpPath, values, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Enter a valid email address.")
}

func TestLogout_RevokesSession(t *testing.T) {
	app := newTestApp(t, Deps{})
	require.NoError(t, app.store.Save(t.Context(), "session-1", "account-1", time.Hour))
	app.principal = &session.Principal{AccountID: kernel.NewUUID(), SessionID: "session-1", Role: identity.Customer}

	rec := app.post(LogoutPath, url.Values{}, "")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))
	assert.Zero(t, app.store.count())
	assert.Equal(t, []Flash{{Level: FlashInfo, Message: msgSignedOut}}, flashesOf(t, rec))
}

func TestLogout_AnonymousGoesToLogin(t *testing.T) {
	app := newTestApp(t, Deps{})

	rec := app.get(LogoutPath)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))
}

func TestForgotPassword_IsStatic(t *testing.T) {
	app := newTestApp(t, Deps{})

	rec := app.get(ForgotPasswordPath)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Reset password")
}
