package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/akmalmp/go-contacts/models"
)

// psql is the shared statement builder configured for PostgreSQL's
// $N placeholder format.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// searchConditions translates the optional contact filters into squirrel
// predicates, always anchored on the owning user. The name filter matches
// either name column; all filters are case-insensitive substring matches
// and are ANDed together.
func searchConditions(userID int64, filter models.ContactFilter) sq.And {
	conditions := sq.And{sq.Eq{"user_id": userID}}

	if filter.Name != "" {
		pattern := "%" + filter.Name + "%"
		conditions = append(conditions, sq.Or{
			sq.ILike{"first_name": pattern},
			sq.ILike{"last_name": pattern},
		})
	}
	if filter.Email != "" {
		conditions = append(conditions, sq.ILike{"email": "%" + filter.Email + "%"})
	}
	if filter.Phone != "" {
		conditions = append(conditions, sq.ILike{"phone": "%" + filter.Phone + "%"})
	}

	return conditions
}

// buildSearchQuery produces the paginated SELECT for contact search.
func buildSearchQuery(userID int64, filter models.ContactFilter, page models.PageRequest) (string, []any, error) {
	return psql.
		Select("contact_id", "user_id", "first_name", "last_name", "email", "phone").
		From("contacts").
		Where(searchConditions(userID, filter)).
		OrderBy("contact_id").
		Limit(uint64(page.Size)).
		Offset(page.Offset()).
		ToSql()
}

// buildSearchCountQuery produces the matching COUNT(*) for the same filter,
// without pagination, so the meta block can report the full total.
func buildSearchCountQuery(userID int64, filter models.ContactFilter) (string, []any, error) {
	return psql.
		Select("COUNT(*)").
		From("contacts").
		Where(searchConditions(userID, filter)).
		ToSql()
}
