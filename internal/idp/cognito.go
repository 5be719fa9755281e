// Package idp proxies admin user management to the Cognito user pool. No
// user data is persisted locally; every call goes straight to the provider.
package idp

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"github.com/whiterosespeakers/wrs-backend/internal/models"
)

// Client is the subset of the Cognito admin API the service uses.
type Client interface {
	ListUsers(ctx context.Context, params *cognitoidentityprovider.ListUsersInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ListUsersOutput, error)
	AdminListGroupsForUser(ctx context.Context, params *cognitoidentityprovider.AdminListGroupsForUserInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminListGroupsForUserOutput, error)
	AdminCreateUser(ctx context.Context, params *cognitoidentityprovider.AdminCreateUserInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminCreateUserOutput, error)
	AdminDeleteUser(ctx context.Context, params *cognitoidentityprovider.AdminDeleteUserInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminDeleteUserOutput, error)
	AdminAddUserToGroup(ctx context.Context, params *cognitoidentityprovider.AdminAddUserToGroupInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminAddUserToGroupOutput, error)
	AdminRemoveUserFromGroup(ctx context.Context, params *cognitoidentityprovider.AdminRemoveUserFromGroupInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminRemoveUserFromGroupOutput, error)
	AdminEnableUser(ctx context.Context, params *cognitoidentityprovider.AdminEnableUserInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminEnableUserOutput, error)
	AdminDisableUser(ctx context.Context, params *cognitoidentityprovider.AdminDisableUserInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminDisableUserOutput, error)
	AdminSetUserPassword(ctx context.Context, params *cognitoidentityprovider.AdminSetUserPasswordInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminSetUserPasswordOutput, error)
}

// Service wraps the client with pool and group configuration.
type Service struct {
	client     Client
	userPoolID string
	adminGroup string
}

// New builds the pass-through service.
func New(client Client, userPoolID, adminGroup string) *Service {
	if adminGroup == "" {
		adminGroup = "Admins"
	}
	return &Service{
		client:     client,
		userPoolID: userPoolID,
		adminGroup: adminGroup,
	}
}

// ListUsers returns every account with its group memberships. Groups are
// fetched per user; the pool is small enough that the fan-out stays cheap.
func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	out, err := s.client.ListUsers(ctx, &cognitoidentityprovider.ListUsersInput{
		UserPoolId: aws.String(s.userPoolID),
	})
	if err != nil {
		return nil, fmt.Errorf("idp: list users: %w", err)
	}

	users := make([]models.User, 0, len(out.Users))
	for _, u := range out.Users {
		username := aws.ToString(u.Username)

		groupsOut, err := s.client.AdminListGroupsForUser(ctx, &cognitoidentityprovider.AdminListGroupsForUserInput{
			UserPoolId: aws.String(s.userPoolID),
			Username:   u.Username,
		})
		if err != nil {
			return nil, fmt.Errorf("idp: groups for %s: %w", username, err)
		}

		user := models.User{
			Username: username,
			Email:    attribute(u.Attributes, "email"),
			Name:     attribute(u.Attributes, "name"),
			Status:   string(u.UserStatus),
			Enabled:  u.Enabled,
		}
		if u.UserCreateDate != nil {
			user.CreatedAt = u.UserCreateDate.UTC().Format(time.RFC3339)
		}
		for _, g := range groupsOut.Groups {
			name := aws.ToString(g.GroupName)
			user.Groups = append(user.Groups, name)
			if name == s.adminGroup {
				user.IsAdmin = true
			}
		}
		users = append(users, user)
	}
	return users, nil
}

// CreateUser provisions an account with a temporary password, suppressing
// the provider's welcome email, and optionally grants the admin group.
func (s *Service) CreateUser(ctx context.Context, email, name, temporaryPassword string, isAdmin bool) error {
	attrs := []types.AttributeType{
		{Name: aws.String("email"), Value: aws.String(email)},
		{Name: aws.String("email_verified"), Value: aws.String("true")},
	}
	if name != "" {
		attrs = append(attrs, types.AttributeType{Name: aws.String("name"), Value: aws.String(name)})
	}

	_, err := s.client.AdminCreateUser(ctx, &cognitoidentityprovider.AdminCreateUserInput{
		UserPoolId:        aws.String(s.userPoolID),
		Username:          aws.String(email),
		UserAttributes:    attrs,
		TemporaryPassword: aws.String(temporaryPassword),
		MessageAction:     types.MessageActionTypeSuppress,
	})
	if err != nil {
		return fmt.Errorf("idp: create user: %w", err)
	}

	if isAdmin {
		if err := s.SetAdmin(ctx, email, true); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) DeleteUser(ctx context.Context, username string) error {
	_, err := s.client.AdminDeleteUser(ctx, &cognitoidentityprovider.AdminDeleteUserInput{
		UserPoolId: aws.String(s.userPoolID),
		Username:   aws.String(username),
	})
	if err != nil {
		return fmt.Errorf("idp: delete user: %w", err)
	}
	return nil
}

// SetAdmin adds or removes the administrator group membership.
func (s *Service) SetAdmin(ctx context.Context, username string, isAdmin bool) error {
	if isAdmin {
		_, err := s.client.AdminAddUserToGroup(ctx, &cognitoidentityprovider.AdminAddUserToGroupInput{
			UserPoolId: aws.String(s.userPoolID),
			Username:   aws.String(username),
			GroupName:  aws.String(s.adminGroup),
		})
		if err != nil {
			return fmt.Errorf("idp: add to group: %w", err)
		}
		return nil
	}

	_, err := s.client.AdminRemoveUserFromGroup(ctx, &cognitoidentityprovider.AdminRemoveUserFromGroupInput{
		UserPoolId: aws.String(s.userPoolID),
		Username:   aws.String(username),
		GroupName:  aws.String(s.adminGroup),
	})
	if err != nil {
		return fmt.Errorf("idp: remove from group: %w", err)
	}
	return nil
}

func (s *Service) SetEnabled(ctx context.Context, username string, enabled bool) error {
	if enabled {
		_, err := s.client.AdminEnableUser(ctx, &cognitoidentityprovider.AdminEnableUserInput{
			UserPoolId: aws.String(s.userPoolID),
			Username:   aws.String(username),
		})
		if err != nil {
			return fmt.Errorf("idp: enable user: %w", err)
		}
		return nil
	}

	_, err := s.client.AdminDisableUser(ctx, &cognitoidentityprovider.AdminDisableUserInput{
		UserPoolId: aws.String(s.userPoolID),
		Username:   aws.String(username),
	})
	if err != nil {
		return fmt.Errorf("idp: disable user: %w", err)
	}
	return nil
}

// SetPassword sets a permanent password, the admin-initiated reset path.
func (s *Service) SetPassword(ctx context.Context, username, password string) error {
	_, err := s.client.AdminSetUserPassword(ctx, &cognitoidentityprovider.AdminSetUserPasswordInput{
		UserPoolId: aws.String(s.userPoolID),
		Username:   aws.String(username),
		Password:   aws.String(password),
		Permanent:  true,
	})
	if err != nil {
		return fmt.Errorf("idp: set password: %w", err)
	}
	return nil
}

func attribute(attrs []types.AttributeType, name string) string {
	for _, a := range attrs {
		if aws.ToString(a.Name) == name {
			return aws.ToString(a.Value)
		}
	}
	return ""
}
