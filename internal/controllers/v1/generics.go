package v1

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ledgerlens/backend/internal/models"
)

var errNoID = errors.New("no ID specified")

// getModelByID gets a resource of a specified type by its ID.
//
// If the resource does not exist or the ID is the zero UUID, an error naming
// the resource is returned.
func getModelByID[T models.Model](id uuid.UUID) (resource T, err error) {
	name := strings.ToLower(resource.Self())

	if id == uuid.Nil {
		return resource, fmt.Errorf("%w for the %s", errNoID, name)
	}

	err = models.DB.First(&resource, "id = ?", id).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return resource, fmt.Errorf("%w %s with this ID", models.ErrResourceNotFound, name)
	}

	return resource, err
}
