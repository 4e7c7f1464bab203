package services

import (
	"fmt"

	"rentledger/internal/models"
	"rentledger/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const policyModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && (p.obj == "*" || r.obj == p.obj) && r.act == p.act
`

var defaultPolicies = [][]string{
	{string(models.RoleHouseOwner), "house", "read"},
	{string(models.RoleHouseOwner), "house", "write"},
	{string(models.RoleHouseOwner), "floor", "read"},
	{string(models.RoleHouseOwner), "floor", "write"},
	{string(models.RoleHouseOwner), "room", "read"},
	{string(models.RoleHouseOwner), "room", "write"},
	{string(models.RoleHouseOwner), "utility", "read"},
	{string(models.RoleHouseOwner), "utility", "write"},
	{string(models.RoleHouseOwner), "report", "read"},
	{string(models.RoleHouseOwner), "follow", "read"},
	{string(models.RoleHouseOwner), "follow", "write"},

	{string(models.RoleRenter), "room", "read"},
	{string(models.RoleRenter), "utility", "read"},
	{string(models.RoleRenter), "follow", "read"},
	{string(models.RoleRenter), "follow", "write"},

	{string(models.RoleAdmin), "*", "read"},
	{string(models.RoleAdmin), "follow", "write"},
}

// PolicyService answers coarse role questions before any ownership lookup.
type PolicyService struct {
	enforcer *casbin.Enforcer
	log      logger.Logger
}

func NewPolicyService() (*PolicyService, error) {
	log := logger.New("policyService").Function("NewPolicyService")

	m, err := model.NewModelFromString(policyModel)
	if err != nil {
		return nil, log.Err("failed to parse policy model", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, log.Err("failed to create policy enforcer", err)
	}

	if _, err := enforcer.AddPolicies(defaultPolicies); err != nil {
		return nil, log.Err("failed to load role policies", err)
	}

	return &PolicyService{
		enforcer: enforcer,
		log:      logger.New("policyService"),
	}, nil
}

func (s *PolicyService) Allowed(role models.Role, kind types.ResourceKind, action types.Action) (bool, error) {
	ok, err := s.enforcer.Enforce(string(role), kind.String(), action.String())
	if err != nil {
		return false, s.log.Function("Allowed").Err("failed to evaluate policy", err, "role", role)
	}
	return ok, nil
}

// Require returns types.ErrPermissionDenied when the role may not perform
// action on kind.
func (s *PolicyService) Require(role models.Role, kind types.ResourceKind, action types.Action) error {
	ok, err := s.Allowed(role, kind, action)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: role %s cannot %s %s", types.ErrPermissionDenied, role, action, kind)
	}
	return nil
}
