package utils

import (
	"fmt"
	"intake-service/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateNotificationID() string {
	return uuid.NewString()
}

// GenerateArchiveObjectName lays archived notifications out by form type and day.
func GenerateArchiveObjectName(formType, notificationID string, at time.Time) string {
	return fmt.Sprintf("%s/%s/%s.json", strings.ToLower(formType), at.UTC().Format("2006/01/02"), notificationID)
}
