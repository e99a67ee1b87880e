package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/nerrad567/panelgate/internal/activity"
	"github.com/nerrad567/panelgate/internal/auth"
	"github.com/nerrad567/panelgate/internal/bridge"
	"github.com/nerrad567/panelgate/internal/infrastructure/logging"
)

// Sentinel errors for gateway operations.
var (
	// ErrForbidden indicates the operator's role does not permit the
	// requested command.
	ErrForbidden = errors.New("gateway: insufficient permissions")

	// ErrEmptyMessage indicates an alert with no message text.
	ErrEmptyMessage = errors.New("gateway: empty alert message")

	// ErrMessageTooLong indicates an alert message over the size cap.
	ErrMessageTooLong = errors.New("gateway: alert message too long")
)

// maxAlertLength bounds alert message text.
const maxAlertLength = 1024

// CredentialVerifier checks a username and PIN pair.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, pin string) (*auth.Operator, error)
}

// Publisher delivers device commands to the broker.
type Publisher interface {
	PublishCommand(verb bridge.Verb, subject string) error
}

// ActivityLog is the gateway's view of the activity log.
type ActivityLog interface {
	Append(ctx context.Context, event string) (*activity.Entry, error)
	Recent(ctx context.Context, limit int) ([]*activity.Entry, error)
}

// Deps contains the gateway service's dependencies.
type Deps struct {
	Credentials CredentialVerifier
	Tokens      *auth.TokenService
	Publisher   Publisher
	Log         ActivityLog
	Logger      *logging.Logger
}

// Service implements the panel's operations: login, device commands,
// alerts, and log reads. It owns the authorisation policy; the auth
// package only establishes identity.
type Service struct {
	credentials CredentialVerifier
	tokens      *auth.TokenService
	publisher   Publisher
	log         ActivityLog
	logger      *logging.Logger
}

// New creates the gateway service.
func New(deps Deps) *Service {
	return &Service{
		credentials: deps.Credentials,
		tokens:      deps.Tokens,
		publisher:   deps.Publisher,
		log:         deps.Log,
		logger:      deps.Logger,
	}
}

// Login verifies credentials and issues a session token.
//
// Returns auth.ErrInvalidCredentials on any mismatch; unknown usernames
// and wrong PINs are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, pin string) (string, error) {
	op, err := s.credentials.Verify(ctx, username, pin)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			s.logger.Warn("failed login attempt", "username", username)
			return "", err
		}
		return "", fmt.Errorf("verifying credentials: %w", err)
	}

	token, err := s.tokens.Issue(op.Username, op.Role)
	if err != nil {
		return "", fmt.Errorf("issuing token: %w", err)
	}

	s.logger.Info("operator logged in", "username", op.Username, "role", op.Role)
	return token, nil
}

// commandPolicy returns the minimum role for a verb. Unlock opens the
// door, so it is admin-only; everything else needs any valid session.
func commandPolicy(verb bridge.Verb) auth.Role {
	if verb == bridge.VerbUnlock {
		return auth.RoleAdmin
	}
	return auth.RoleGuest
}

// commandEvent is the activity line recorded for an executed command.
func commandEvent(verb bridge.Verb, subject string) string {
	switch verb {
	case bridge.VerbUnlock:
		return fmt.Sprintf("Lock unlocked by %s", subject)
	case bridge.VerbLock:
		return fmt.Sprintf("Lock locked by %s", subject)
	case bridge.VerbArm:
		return fmt.Sprintf("System armed by %s", subject)
	case bridge.VerbDisarm:
		return fmt.Sprintf("System disarmed by %s", subject)
	default:
		return fmt.Sprintf("Command %s by %s", verb, subject)
	}
}

// commandStatus is the API status word for an executed command.
func commandStatus(verb bridge.Verb) string {
	switch verb {
	case bridge.VerbUnlock:
		return "unlocked"
	case bridge.VerbLock:
		return "locked"
	case bridge.VerbArm:
		return "armed"
	case bridge.VerbDisarm:
		return "disarmed"
	default:
		return string(verb)
	}
}

// Command verifies the session token, checks the role policy, publishes
// the verb to the device topic, and records the activity line.
//
// Ordering matters: the publish happens before the log append, and a
// failed publish (bridge.ErrTransportUnavailable) leaves no log entry.
// If the append fails after a successful publish the error is still
// returned; the command happened, but the caller must know the audit
// trail is incomplete.
//
// Returns the status word ("unlocked", "armed", ...) on success.
func (s *Service) Command(ctx context.Context, token string, verb bridge.Verb) (string, error) {
	if !bridge.IsValidVerb(verb) {
		return "", fmt.Errorf("%w: %q", bridge.ErrInvalidVerb, verb)
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		return "", err
	}

	if required := commandPolicy(verb); required == auth.RoleAdmin && claims.Role != auth.RoleAdmin {
		s.logger.Warn("command refused", "verb", verb, "username", claims.Subject, "role", claims.Role)
		return "", ErrForbidden
	}

	if err := s.publisher.PublishCommand(verb, claims.Subject); err != nil {
		return "", err
	}

	if _, err := s.log.Append(ctx, commandEvent(verb, claims.Subject)); err != nil {
		s.logger.Error("command executed but not recorded", "verb", verb, "username", claims.Subject, "error", err)
		return "", fmt.Errorf("recording command: %w", err)
	}

	s.logger.Info("command executed", "verb", verb, "username", claims.Subject)
	return commandStatus(verb), nil
}

// Alert records an alert message in the activity log.
//
// Alerts come from sensors and panic buttons on the local network and
// carry no session token. They never touch the broker; the activity
// log is the delivery mechanism.
func (s *Service) Alert(ctx context.Context, message string) error {
	if message == "" {
		return ErrEmptyMessage
	}
	if len(message) > maxAlertLength {
		return fmt.Errorf("%w: exceeds %d bytes", ErrMessageTooLong, maxAlertLength)
	}

	if _, err := s.log.Append(ctx, fmt.Sprintf("ALERT: %s", message)); err != nil {
		return fmt.Errorf("recording alert: %w", err)
	}

	s.logger.Warn("alert raised", "message", message)
	return nil
}

// RecentLogs returns up to limit activity entries, newest first.
func (s *Service) RecentLogs(ctx context.Context, limit int) ([]*activity.Entry, error) {
	entries, err := s.log.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("reading activity log: %w", err)
	}
	return entries, nil
}
