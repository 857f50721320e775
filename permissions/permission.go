package permissions

import (
	"agency/shared/constant"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

var knownRoles = map[string]bool{
	constant.RoleAdmin:      true,
	constant.RoleSuperAdmin: true,
}

// Permission lists the operator roles allowed on one admin route. Path is the chi route pattern.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]Permission
}

// Parse decodes a permissions document and indexes it by method and route.
// Unknown roles and duplicate routes are rejected.
func Parse(raw []byte) (*PermissionData, error) {
	var data PermissionData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	data.index = make(map[string]Permission, len(data.Endpoints))

	for _, endpoint := range data.Endpoints {
		key := routeKey(endpoint.Path, endpoint.Method)
		if _, dup := data.index[key]; dup {
			return nil, fmt.Errorf("duplicate permission for %s", key)
		}

		for _, role := range endpoint.Permissions {
			if !knownRoles[role] {
				return nil, fmt.Errorf("unknown role %q for %s", role, key)
			}
		}

		data.index[key] = endpoint
	}

	return &data, nil
}

// FindPermissions matches a chi route pattern. Mounted index routes resolve with a trailing slash.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	return r.index[routeKey(path, method)]
}

func routeKey(path, method string) string {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	return strings.ToUpper(method) + " " + path
}

// Get loads the embedded permissions. A broken document yields nil, which the RBAC middleware treats as deny-all.
func Get() *PermissionData {
	data, err := Parse(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to load embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(data.Endpoints)).Msg("Successfully loaded embedded permissions")

	return data
}
