// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

// HeaderToken is the response header carrying the session token after a
// successful login.
const HeaderToken = "Token"

type Users struct{ resource }

type LoginOptions struct {
	ID       mmclient.Opt[string]
	MFAToken mmclient.Opt[string]
	DeviceID mmclient.Opt[string]
	LDAPOnly mmclient.Opt[bool]
}

// Login logs in with a username or email and a password. The session token
// is returned in the HeaderToken response header; the body is the user.
func (u *Users) Login(ctx context.Context, loginID, password string, opts LoginOptions) (*Response, error) {
	req := u.newJSONRequest()
	req.AddToJSON("login_id", loginID)
	req.AddToJSON("password", password)
	mmclient.AddOpt(req, "id", opts.ID)
	mmclient.AddOpt(req, "token", opts.MFAToken)
	mmclient.AddOpt(req, "device_id", opts.DeviceID)
	mmclient.AddOpt(req, "ldap_only", opts.LDAPOnly)
	return u.do(ctx, mmclient.POST, u.url("login"), req, mmclient.AttachBody)
}

// LoginCWS logs in with a token issued by the customer web server, for
// Cloud workspaces only.
func (u *Users) LoginCWS(ctx context.Context, loginID, cwsToken string) (*Response, error) {
	req := u.newJSONRequest()
	req.AddToJSON("login_id", loginID)
	req.AddToJSON("cws_token", cwsToken)
	return u.do(ctx, mmclient.POST, u.url("login", "cws"), req, mmclient.AttachBody)
}

func (u *Users) Logout(ctx context.Context) (*Response, error) {
	return u.do(ctx, mmclient.POST, u.url("logout"), nil, mmclient.AttachNone)
}

// UserPatch carries the profile fields shared by user creation, update and
// patch.
type UserPatch struct {
	Email       mmclient.Opt[string]
	Username    mmclient.Opt[string]
	Password    mmclient.Opt[string]
	FirstName   mmclient.Opt[string]
	LastName    mmclient.Opt[string]
	Nickname    mmclient.Opt[string]
	Locale      mmclient.Opt[string]
	Position    mmclient.Opt[string]
	AuthData    mmclient.Opt[string]
	AuthService mmclient.Opt[string]
	Timezone    mmclient.Opt[map[string]string]
	Props       mmclient.Opt[map[string]string]
	NotifyProps mmclient.Opt[map[string]string]
}

func (p UserPatch) addTo(req *mmclient.Request) {
	mmclient.AddOpt(req, "email", p.Email)
	mmclient.AddOpt(req, "username", p.Username)
	mmclient.AddOpt(req, "password", p.Password)
	mmclient.AddOpt(req, "first_name", p.FirstName)
	mmclient.AddOpt(req, "last_name", p.LastName)
	mmclient.AddOpt(req, "nickname", p.Nickname)
	mmclient.AddOpt(req, "locale", p.Locale)
	mmclient.AddOpt(req, "position", p.Position)
	mmclient.AddOpt(req, "auth_data", p.AuthData)
	mmclient.AddOpt(req, "auth_service", p.AuthService)
	mmclient.AddOpt(req, "timezone", p.Timezone)
	mmclient.AddOpt(req, "props", p.Props)
	mmclient.AddOpt(req, "notify_props", p.NotifyProps)
}

// CreateUser creates a user. inviteToken (t) or inviteID (iid) add the new
// user to the team they were issued for.
func (u *Users) CreateUser(ctx context.Context, email, username string, profile UserPatch, inviteToken, inviteID mmclient.Opt[string]) (*Response, error) {
	req := u.newJSONRequest()
	profile.addTo(req)
	req.AddToJSON("email", email)
	req.AddToJSON("username", username)

	query := url.Values{}
	if t, ok := inviteToken.Get(); ok {
		query.Set("t", t)
	}
	if iid, ok := inviteID.Get(); ok {
		query.Set("iid", iid)
	}
	return u.do(ctx, mmclient.POST, withQuery(u.url(), query), req, mmclient.AttachBody)
}

type UserQuery struct {
	Paging
	InTeam           mmclient.Opt[string]
	NotInTeam        mmclient.Opt[string]
	InChannel        mmclient.Opt[string]
	NotInChannel     mmclient.Opt[string]
	InGroup          mmclient.Opt[string]
	GroupConstrained mmclient.Opt[bool]
	WithoutTeam      mmclient.Opt[bool]
	Active           mmclient.Opt[bool]
	Inactive         mmclient.Opt[bool]
	Role             mmclient.Opt[string]
	Sort             mmclient.Opt[string]
	Roles            mmclient.Opt[string]
	ChannelRoles     mmclient.Opt[string]
	TeamRoles        mmclient.Opt[string]
}

func (u *Users) GetUsers(ctx context.Context, query UserQuery) (*Response, error) {
	req := u.newJSONRequest()
	query.addTo(req)
	mmclient.AddOpt(req, "in_team", query.InTeam)
	mmclient.AddOpt(req, "not_in_team", query.NotInTeam)
	mmclient.AddOpt(req, "in_channel", query.InChannel)
	mmclient.AddOpt(req, "not_in_channel", query.NotInChannel)
	mmclient.AddOpt(req, "in_group", query.InGroup)
	mmclient.AddOpt(req, "group_constrained", query.GroupConstrained)
	mmclient.AddOpt(req, "without_team", query.WithoutTeam)
	mmclient.AddOpt(req, "active", query.Active)
	mmclient.AddOpt(req, "inactive", query.Inactive)
	mmclient.AddOpt(req, "role", query.Role)
	mmclient.AddOpt(req, "sort", query.Sort)
	mmclient.AddOpt(req, "roles", query.Roles)
	mmclient.AddOpt(req, "channel_roles", query.ChannelRoles)
	mmclient.AddOpt(req, "team_roles", query.TeamRoles)
	return u.do(ctx, mmclient.GET, u.url(), req, mmclient.AttachBody)
}

// PermanentDeleteAllUsers deletes every user and their data. Only allowed
// when ServiceSettings.EnableAPIUserDeletion is set, and only from local
// mode.
func (u *Users) PermanentDeleteAllUsers(ctx context.Context) (*Response, error) {
	return u.do(ctx, mmclient.DEL, u.url(), nil, mmclient.AttachNone)
}

// GetUsersByIDs gets users by ID. With since set only users updated after
// it are returned.
func (u *Users) GetUsersByIDs(ctx context.Context, userIDs []string, since mmclient.Opt[int64]) (*Response, error) {
	req := u.newJSONRequest()
	req.SetJSONBody(userIDs)
	query := url.Values{}
	if s, ok := since.Get(); ok {
		query.Set("since", strconv.FormatInt(s, 10))
	}
	return u.do(ctx, mmclient.POST, withQuery(u.url("ids"), query), req, mmclient.AttachBody)
}

// GetUsersByGroupChannelIDs gets the members of group messages, keyed by
// channel ID.
func (u *Users) GetUsersByGroupChannelIDs(ctx context.Context, channelIDs []string) (*Response, error) {
	req := u.newJSONRequest()
	req.SetJSONBody(channelIDs)
	return u.do(ctx, mmclient.POST, u.url("group_channels"), req, mmclient.AttachBody)
}

func (u *Users) GetUsersByUsernames(ctx context.Context, usernames []string) (*Response, error) {
	req := u.newJSONRequest()
	req.SetJSONBody(usernames)
	return u.do(ctx, mmclient.POST, u.url("usernames"), req, mmclient.AttachBody)
}

type UserSearch struct {
	Term             string
	TeamID           mmclient.Opt[string]
	NotInTeamID      mmclient.Opt[string]
	InChannelID      mmclient.Opt[string]
	NotInChannelID   mmclient.Opt[string]
	InGroupID        mmclient.Opt[string]
	GroupConstrained mmclient.Opt[bool]
	AllowInactive    mmclient.Opt[bool]
	WithoutTeam      mmclient.Opt[bool]
	Limit            mmclient.Opt[int]
}

func (u *Users) SearchUsers(ctx context.Context, search UserSearch) (*Response, error) {
	req := u.newJSONRequest()
	req.AddToJSON("term", search.Term)
	mmclient.AddOpt(req, "team_id", search.TeamID)
	mmclient.AddOpt(req, "not_in_team_id", search.NotInTeamID)
	mmclient.AddOpt(req, "in_channel_id", search.InChannelID)
	mmclient.AddOpt(req, "not_in_channel_id", search.NotInChannelID)
	mmclient.AddOpt(req, "in_group_id", search.InGroupID)
	mmclient.AddOpt(req, "group_constrained", search.GroupConstrained)
	mmclient.AddOpt(req, "allow_inactive", search.AllowInactive)
	mmclient.AddOpt(req, "without_team", search.WithoutTeam)
	mmclient.AddOpt(req, "limit", search.Limit)
	return u.do(ctx, mmclient.POST, u.url("search"), req, mmclient.AttachBody)
}

func (u *Users) AutocompleteUsers(ctx context.Context, name string, teamID, channelID mmclient.Opt[string], limit mmclient.Opt[int]) (*Response, error) {
	req := u.newJSONRequest()
	req.AddToJSON("name", name)
	mmclient.AddOpt(req, "team_id", teamID)
	mmclient.AddOpt(req, "channel_id", channelID)
	mmclient.AddOpt(req, "limit", limit)
	return u.do(ctx, mmclient.GET, u.url("autocomplete"), req, mmclient.AttachBody)
}

// GetKnownUsers gets the IDs of the users sharing a channel with the caller.
func (u *Users) GetKnownUsers(ctx context.Context) (*Response, error) {
	return u.do(ctx, mmclient.GET, u.url("known"), nil, mmclient.AttachNone)
}

func (u *Users) GetUsersStats(ctx context.Context) (*Response, error) {
	return u.do(ctx, mmclient.GET, u.url("stats"), nil, mmclient.AttachNone)
}

type UserStatsFilter struct {
	InTeam         mmclient.Opt[string]
	InChannel      mmclient.Opt[string]
	IncludeDeleted mmclient.Opt[bool]
	IncludeBots    mmclient.Opt[bool]
	Roles          mmclient.Opt[string]
	ChannelRoles   mmclient.Opt[string]
	TeamRoles      mmclient.Opt[string]
}

func (u *Users) GetFilteredUsersStats(ctx context.Context, filter UserStatsFilter) (*Response, error) {
	req := u.newJSONRequest()
	mmclient.AddOpt(req, "in_team", filter.InTeam)
	mmclient.AddOpt(req, "in_channel", filter.InChannel)
	mmclient.AddOpt(req, "include_deleted", filter.IncludeDeleted)
	mmclient.AddOpt(req, "include_bots", filter.IncludeBots)
	mmclient.AddOpt(req, "roles", filter.Roles)
	mmclient.AddOpt(req, "channel_roles", filter.ChannelRoles)
	mmclient.AddOpt(req, "team_roles", filter.TeamRoles)
	return u.do(ctx, mmclient.GET, u.url("stats", "filtered"), req, mmclient.AttachBody)
}

// GetUser gets a user. userID may be "me".
func (u *Users) GetUser(ctx context.Context, userID string) (*Response, error) {
	return u.do(ctx, mmclient.GET, u.url(userID), nil, mmclient.AttachNone)
}

// UpdateUser replaces the profile of a user. Fields left unset are cleared.
func (u *Users) UpdateUser(ctx context.Context, userID, email, username string, profile UserPatch) (*Response, error) {
	req := u.newJSONRequest()
	profile.addTo(req)
	req.AddToJSON("id", userID)
	req.AddToJSON("email", email)
	req.AddToJSON("username", username)
	return u.do(ctx, mmclient.PUT, u.url(userID), req, mmclient.AttachBody)
}

// DeactivateUser deactivates a user and revokes their sessions.
func (u *Users) DeactivateUser(ctx context.Context, userID string) (*Response, error) {
	return u.do(ctx, mmclient.DEL, u.url(userID), nil, mmclient.AttachNone)
}

func (u *Users) PatchUser(ctx context.Context, userID string, patch UserPatch) (*Response, error) {
	req := u.newJSONRequest()
	patch.addTo(req)
	return u.do(ctx, mmclient.PUT, u.url(userID, "patch"), req, mmclient.AttachBody)
}

// UpdateUserRoles replaces the system roles of a user. roles is space
// separated, e.g. "system_user system_admin".
func (u *Users) UpdateUserRoles(ctx context.Context, userID, roles string) (*Response, error) {
	req := u.newJSONRequest()
	req.AddToJSON("roles", roles)
	return u.do(ctx, mmclient.PUT, u.url(userID, "roles"), req, mmclient.AttachBody)
}

func (u *Users) UpdateUserActive(ctx context.Context, userID string, active bool) (*Response, error) {
	req := u.newJSONRequest()
	req.AddToJSON("active", active)
	return u.do(ctx, mmclient.PUT, u.url(userID, "active"), req, mmclient.AttachBody)
}

// GetProfileImage returns the image in Response.Body. lastPictureUpdate
// is a cache buster.
func (u *Users) GetProfileImage(ctx context.Context, userID string, lastPictureUpdate mmclient.Opt[string]) (*Response, error) {
	req := u.newJSONRequest()
	mmclient.AddOpt(req, "_", lastPictureUpdate)
	return u.do(ctx, mmclient.GET, u.url(userID, "image"), req, mmclient.AttachBody)
}

func (u *Users) SetProfileImage(ctx context.Context, userID, filename string, image io.Reader) (*Response, error) {
	req := u.newMultipartRequest()
	req.AddToMultipartFormData("image", mmclient.File{Name: filename, Content: image})
	return u.do(ctx, mmclient.POST, u.url(userID, "image"), req, mmclient.AttachFile)
}

// DeleteProfileImage reverts a user to the generated default image.
func (u *Users) DeleteProfileImage(ctx context.Context, userID string) (*Response, error) {
	return u.do(ctx, mmclient.DEL, u.url(userID, "image"), nil, mmclient.AttachNone)
}

func (u *Users) GetDefaultProfileImage(ctx context.Context, userID string) (*Response, error) {
	return u.do(ctx, mmclient.GET, u.url(userID, "image", "default"), nil, mmclient.AttachNone)
}

func (u *Users) GetUserByUsername(ctx context.Context, username string) (*Response, error) {
	return u.do(ctx, mmclient.GET, u.url("username", username), nil, mmclient.AttachNone)
}

// ResetPassword sets a new password using the code of a reset email.
func (u *Users) ResetPassword(ctx context.Context, code, newPassword string) (*Response, error) {
	req := u.newJSONRequest()
	req.AddToJSON("code", code)
	req.AddToJSON("new_password", newPassword)
	return u.do(ctx, mmclient.POST, u.url("password", "reset"), req, mmclient.AttachBody)
}

// UpdateUserMFA activates or deactivates multi-factor authentication.
// code is required to activate it.
func (u *Users) UpdateUserMFA(ctx context.Context, userID string, activate bool, code mmclient.Opt[string]) (*Response, error) {
	req := u.newJSONRequest()
	req.AddToJSON("activate", activate)
	mmclient.AddOpt(req, "code", code)
	return u.do(ctx, mmclient.PUT, u.url(userID, "mfa"), req, mmclient.AttachBody)
}

func (u *Users) GenerateMFASecret(ctx context.Context, userID string) (*Response, error) {
	return u.do(ctx, mmclient.POST, u.url(userID, "mfa", "generate"), nil, mmclient.AttachNone)
}

func (u *Users) DemoteUserToGuest(ctx context.Context, userID string) (*Response, error) {
	return u.do(ctx, mmclient.POST, u.url(userID, "demote"), nil, mmclient.AttachNone)
}

func (u *Users) PromoteGuestToUser(ctx context.Context, userID string) (*Response, error) {
	return u.do(ctx, mmclient.POST, u.url(userID, "promote"), nil, mmclient.AttachNone)
}

func (u *Users) ConvertUserToBot(ctx context.Context, userID string) (*Response, error) {
	return u.do(ctx, mmclient.POST, u.url(userID, "convert_to_bot"), nil, mmclient.AttachNone)
}

// CheckUserMFA tells whether loginID has multi-factor authentication
// active.
func (u *Users) CheckUserMFA(ctx context.Context, loginID string) (*Response, error) {
	req := u.newJSONRequest()
	req.AddToJSON("login_id", loginID)
	return u.do(ctx, mmclient.POST, u.url("mfa"), req, mmclient.AttachBody)
}

// UpdateUserPassword changes a password. currentPassword is only optional
// for system admins changing another user's password.
func (u *Users) UpdateUserPassword(ctx context.Context, userID, newPassword string, currentPassword mmclient.Opt[string]) (*Response, error) {
	req := u.newJSONRequest()
	req.AddToJSON("new_password", newPassword)
	mmclient.AddOpt(req, "current_password", currentPassword)
	return u.do(ctx, mmclient.PUT, u.url(userID, "password"), req, mmclient.AttachBody)
}

func (u *Users) SendPasswordResetEmail(ctx context.Context, email string) (*Response, error) {
	req := u.newJSONRequest()
	req.AddToJSON("email", email)
	return u.do(ctx, mmclient.POST, u.url("password", "reset", "send"), req, mmclient.AttachBody)
}

func (u *Users) GetUserByEmail(ctx context.Context, email string) (*Response, error) {
	return u.do(ctx, mmclient.GET, u.url("email", email), nil, mmclient.AttachNone)
}

func (u *Users) GetUserSessions(ctx context.Context, userID string) (*Response, error) {
	return u.do(ctx, mmclient.GET, u.url(userID, "sessions"), nil, mmclient.AttachNone)
}

func (u *Users) RevokeUserSession(ctx context.Context, userID, sessionID string) (*Response, error) {
	req := u.newJSONRequest()
	req.AddToJSON("session_id", sessionID)
	return u.do(ctx, mmclient.POST, u.url(userID, "sessions", "revoke"), req, mmclient.AttachBody)
}

func (u *Users) RevokeAllUserSessions(ctx context.Context, userID string) (*Response, error) {
	return u.do(ctx, mmclient.POST, u.url(userID, "sessions", "revoke", "all"), nil, mmclient.AttachNone)
}

// AttachMobileDevice attaches a push notification device ID to the current
// session.
func (u *Users) AttachMobileDevice(ctx context.Context, deviceID string) (*Response, error) {
	req := u.newJSONRequest()
	req.AddToJSON("device_id", deviceID)
	return u.do(ctx, mmclient.PUT, u.url("sessions", "device"), req, mmclient.AttachBody)
}

func (u *Users) GetUserAudits(ctx context.Context, userID string) (*Response, error) {
	return u.do(ctx, mmclient.GET, u.url(userID, "audits"), nil, mmclient.AttachNone)
}

// VerifyUserEmailByID marks the email of a user as verified without the
// token. Requires manage_system.
func (u *Users) VerifyUserEmailByID(ctx context.Context, userID string) (*Response, error) {
	return u.do(ctx, mmclient.POST, u.url(userID, "email", "verify", "member"), nil, mmclient.AttachNone)
}

// VerifyUserEmail verifies an email with the token of a verification email.
func (u *Users) VerifyUserEmail(ctx context.Context, token string) (*Response, error) {
	req := u.newJSONRequest()
	req.AddToJSON("token", token)
	return u.do(ctx, mmclient.POST, u.url("email", "verify"), req, mmclient.AttachBody)
}

func (u *Users) SendVerificationEmail(ctx context.Context, email string) (*Response, error) {
	req := u.newJSONRequest()
	req.AddToJSON("email", email)
	return u.do(ctx, mmclient.POST, u.url("email", "verify", "send"), req, mmclient.AttachBody)
}

type LoginSwitch struct {
	CurrentService string
	NewService     string
	Email          mmclient.Opt[string]
	Password       mmclient.Opt[string]
	MFACode        mmclient.Opt[string]
	LDAPID         mmclient.Opt[string]
}

// SwitchLoginMethod switches a user between email/password and another
// authentication service. For OAuth services the response holds the URL
// to continue with.
func (u *Users) SwitchLoginMethod(ctx context.Context, sw LoginSwitch) (*Response, error) {
	req := u.newJSONRequest()
	req.AddToJSON("current_service", sw.CurrentService)
	req.AddToJSON("new_service", sw.NewService)
	mmclient.AddOpt(req, "email", sw.Email)
	mmclient.AddOpt(req, "password", sw.Password)
	mmclient.AddOpt(req, "mfa_code", sw.MFACode)
	mmclient.AddOpt(req, "ldap_id", sw.LDAPID)
	return u.do(ctx, mmclient.POST, u.url("login", "switch"), req, mmclient.AttachBody)
}

// CreateUserAccessToken creates a personal access token. The token itself
// is only ever returned by this call.
func (u *Users) CreateUserAccessToken(ctx context.Context, userID, description string) (*Response, error) {
	req := u.newJSONRequest()
	req.AddToJSON("description", description)
	return u.do(ctx, mmclient.POST, u.url(userID, "tokens"), req, mmclient.AttachBody)
}

func (u *Users) GetUserAccessTokensForUser(ctx context.Context, userID string, paging Paging) (*Response, error) {
	req := u.newJSONRequest()
	paging.addTo(req)
	return u.do(ctx, mmclient.GET, u.url(userID, "tokens"), req, mmclient.AttachBody)
}

// GetUserAccessTokens gets the access tokens of all users.
func (u *Users) GetUserAccessTokens(ctx context.Context, paging Paging) (*Response, error) {
	req := u.newJSONRequest()
	paging.addTo(req)
	return u.do(ctx, mmclient.GET, u.url("tokens"), req, mmclient.AttachBody)
}

func (u *Users) RevokeUserAccessToken(ctx context.Context, tokenID string) (*Response, error) {
	return u.tokenAction(ctx, "revoke", tokenID)
}

func (u *Users) GetUserAccessToken(ctx context.Context, tokenID string) (*Response, error) {
	return u.do(ctx, mmclient.GET, u.url("tokens", tokenID), nil, mmclient.AttachNone)
}

func (u *Users) DisableUserAccessToken(ctx context.Context, tokenID string) (*Response, error) {
	return u.tokenAction(ctx, "disable", tokenID)
}

func (u *Users) EnableUserAccessToken(ctx context.Context, tokenID string) (*Response, error) {
	return u.tokenAction(ctx, "enable", tokenID)
}

func (u *Users) SearchUserAccessTokens(ctx context.Context, term string) (*Response, error) {
	req := u.newJSONRequest()
	req.AddToJSON("term", term)
	return u.do(ctx, mmclient.POST, u.url("tokens", "search"), req, mmclient.AttachBody)
}

// UpdateUserAuth sets the authentication service of a user and the ID it
// knows the user by.
func (u *Users) UpdateUserAuth(ctx context.Context, userID, authData, authService string) (*Response, error) {
	req := u.newJSONRequest()
	req.AddToJSON("auth_data", authData)
	req.AddToJSON("auth_service", authService)
	return u.do(ctx, mmclient.PUT, u.url(userID, "auth"), req, mmclient.AttachBody)
}

func (u *Users) RecordTermsOfServiceAction(ctx context.Context, userID, termsID string, accepted bool) (*Response, error) {
	return (&TermsOfService{u.resource}).RecordTermsOfServiceAction(ctx, userID, termsID, accepted)
}

func (u *Users) GetTermsOfServiceStatus(ctx context.Context, userID string) (*Response, error) {
	return (&TermsOfService{u.resource}).GetTermsOfServiceStatus(ctx, userID)
}

// RevokeAllSessions revokes the sessions of every user, including the
// caller's.
func (u *Users) RevokeAllSessions(ctx context.Context) (*Response, error) {
	return u.do(ctx, mmclient.POST, u.url("sessions", "revoke", "all"), nil, mmclient.AttachNone)
}

// PublishUserTyping notifies the members of a channel that userID is
// typing, in a thread when parentID is set.
func (u *Users) PublishUserTyping(ctx context.Context, userID, channelID string, parentID mmclient.Opt[string]) (*Response, error) {
	req := u.newJSONRequest()
	req.AddToJSON("channel_id", channelID)
	mmclient.AddOpt(req, "parent_id", parentID)
	return u.do(ctx, mmclient.POST, u.url(userID, "typing"), req, mmclient.AttachBody)
}

// GetUploadsForUser gets the incomplete upload sessions of a user.
func (u *Users) GetUploadsForUser(ctx context.Context, userID string) (*Response, error) {
	return u.do(ctx, mmclient.GET, u.url(userID, "uploads"), nil, mmclient.AttachNone)
}

func (u *Users) GetChannelMembersForUser(ctx context.Context, userID string, paging Paging) (*Response, error) {
	req := u.newJSONRequest()
	paging.addTo(req)
	return u.do(ctx, mmclient.GET, u.url(userID, "channel_members"), req, mmclient.AttachBody)
}

func (u *Users) MigrateAuthToLDAP(ctx context.Context, from, matchField string, force mmclient.Opt[bool]) (*Response, error) {
	return (&LDAP{u.resource}).MigrateAuthToLDAP(ctx, from, matchField, force)
}

func (u *Users) MigrateAuthToSAML(ctx context.Context, from string, matches map[string]string, auto bool) (*Response, error) {
	return (&SAML{u.resource}).MigrateAuthToSAML(ctx, from, matches, auto)
}

func (u *Users) GetUsersWithInvalidEmails(ctx context.Context, paging Paging) (*Response, error) {
	req := u.newJSONRequest()
	paging.addTo(req)
	return u.do(ctx, mmclient.GET, u.url("invalid_emails"), req, mmclient.AttachBody)
}

// ConvertBotToUser turns a bot back into a regular user. The patch must at
// least set a password.
func (u *Users) ConvertBotToUser(ctx context.Context, botUserID string, patch UserPatch, setSystemAdmin mmclient.Opt[bool]) (*Response, error) {
	req := u.newJSONRequest()
	patch.addTo(req)
	query := url.Values{}
	if v, ok := setSystemAdmin.Get(); ok {
		query.Set("set_system_admin", strconv.FormatBool(v))
	}
	return u.do(ctx, mmclient.POST, withQuery(u.url(botUserID, "convert_to_user"), query), req, mmclient.AttachBody)
}

func (u *Users) tokenAction(ctx context.Context, action, tokenID string) (*Response, error) {
	req := u.newJSONRequest()
	req.AddToJSON("token_id", tokenID)
	return u.do(ctx, mmclient.POST, u.url("tokens", action), req, mmclient.AttachBody)
}
