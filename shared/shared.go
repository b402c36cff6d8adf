package shared

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
	"reflect"
	"strconv"
	"streakhub/shared/cache"
	"streakhub/shared/constant"
	"streakhub/shared/dto"
	"streakhub/shared/timezone"
	"strings"

	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the fields of a struct into a map of updated fields.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterByOwner scopes a query to records owned by the given user.
// Every owner-scoped read and mutation goes through this, without exception.
func FilterByOwner(userID, ownerField, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    ownerField,
				Value:    userID,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterOwnedByID scopes a lookup by primary key to the owning user.
func FilterOwnedByID(id, userID, fieldID, ownerField, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
			dto.Filter{
				Field:    ownerField,
				Value:    userID,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Warn().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
	}
}

// BuildCacheKey joins the given parts into a colon-delimited cache key.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery derives a cache key from a prefix plus a hash of the
// request and filter, so distinct list queries cache independently.
func BuildCacheKeyWithQuery(prefix string, req any, filter dto.FilterGroup) string {
	payload, err := json.Marshal(struct {
		Req    any
		Filter dto.FilterGroup
	}{req, filter})
	if err != nil {
		log.Warn().Err(err).Msg("failed to marshal cache key payload")

		return prefix
	}

	sum := fnv.New64a()
	_, _ = sum.Write(payload)

	return fmt.Sprintf("%s:%x", prefix, sum.Sum64())
}
