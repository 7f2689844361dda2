package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors.

// ErrNotFound converts a lookup miss (gorm.ErrRecordNotFound and friends)
// into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Orders ---

// ErrInvalidTransition: the requested status is not reachable from the
// order's current status.
var ErrInvalidTransition = New(
	CodeInvalidStatus,
	"order",
	"Invalid status transition",
	http.StatusBadRequest,
)

// ErrRoleNotPermitted: the transition exists but is gated to the other
// party of the order (buyer-only or seller-only).
var ErrRoleNotPermitted = New(
	CodeInvalidOperation,
	"order",
	"This status change is not permitted for your role on the order",
	http.StatusBadRequest,
)

// ErrNotOrderParticipant: requester is neither buyer nor seller.
var ErrNotOrderParticipant = New(
	CodeForbidden,
	"order",
	"You are not a participant of this order",
	http.StatusForbidden,
)

// ErrOrderNotDeletable: only pending orders can be deleted.
var ErrOrderNotDeletable = New(
	CodeInvalidStatus,
	"order",
	"Only pending orders can be deleted",
	http.StatusBadRequest,
)

// --- Reviews ---

var ErrIncompleteOrder = New(
	CodeInvalidOperation,
	"review",
	"Cannot review an incomplete order",
	http.StatusBadRequest,
)

var ErrAlreadyReviewed = New(
	CodeAlreadyExists,
	"review",
	"A review already exists for this order",
	http.StatusBadRequest,
)

var ErrNotReviewer = New(
	CodeForbidden,
	"review",
	"Only the review author can modify the review",
	http.StatusForbidden,
)

var ErrOnlyBuyerCanReview = New(
	CodeForbidden,
	"review",
	"Only the buyer of the order can leave a review",
	http.StatusForbidden,
)

// --- Gigs ---

var ErrGigInactive = New(
	CodeInvalidStatus,
	"gig",
	"This gig is not currently available",
	http.StatusBadRequest,
)

var ErrNotGigOwner = New(
	CodeForbidden,
	"gig",
	"Only the gig owner can perform this action",
	http.StatusForbidden,
)

// --- Auth & users ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password must be at least 8 characters long",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrCannotModifySelf = New(
	CodeForbidden,
	"user",
	"Operation on your own account is not allowed",
	http.StatusForbidden,
)

// --- Messages ---

var ErrNotMessageRecipient = New(
	CodeForbidden,
	"message",
	"Only the recipient can mark a message as read",
	http.StatusForbidden,
)
