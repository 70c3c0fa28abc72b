// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.

The unique (org_id, name) index on departments is the backstop for the
duplicate-name check the store runs before every write: two concurrent
creators can both pass the pre-write query, but only one insert
survives the index.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureOrganisations(ctx, db); err != nil {
		problems = append(problems, "organisations: "+err.Error())
	}
	if err := ensureDepartments(ctx, db); err != nil {
		problems = append(problems, "departments: "+err.Error())
	}
	if err := ensureDepTeams(ctx, db); err != nil {
		problems = append(problems, "department_teams: "+err.Error())
	}
	if err := ensureHospLocs(ctx, db); err != nil {
		problems = append(problems, "hospital_locations: "+err.Error())
	}
	if err := ensureDepLocAssignments(ctx, db); err != nil {
		problems = append(problems, "department_location_assignments: "+err.Error())
	}
	if err := ensureTeamLocAssignments(ctx, db); err != nil {
		problems = append(problems, "department_team_location_assignments: "+err.Error())
	}
	if err := ensureDepModuleAssignments(ctx, db); err != nil {
		problems = append(problems, "department_module_assignments: "+err.Error())
	}
	if err := ensureHospOrgAssignments(ctx, db); err != nil {
		problems = append(problems, "hospital_organisation_assignments: "+err.Error())
	}
	if err := ensureRotaAssignments(ctx, db); err != nil {
		problems = append(problems, "rota_assignments: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Core helper: reconcile a set of desired indexes for one collection         */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func sameBoolPtr(a, b *bool) bool {
	av := false
	bv := false
	if a != nil {
		av = *a
	}
	if b != nil {
		bv = *b
	}
	return av == bv
}

// Best-effort duplicate-detector (works cross-vendors)
func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 { // E11000 duplicate key error index
				return true
			}
		}
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 11000 {
		return true
	}
	s := err.Error()
	return strings.Contains(s, "E11000") || strings.Contains(strings.ToLower(s), "duplicate key")
}

// Mongo/DocDB sometimes returns IndexOptionsConflict when an index with the
// same keys already exists under a different name (or options differ).
func isOptionsConflictErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "IndexOptionsConflict")
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string

	// Load existing indexes once per collection.
	existing := map[string]existingIndex{} // sig -> index
	cur, err := coll.Indexes().List(ctx)
	if err == nil {
		for cur.Next(ctx) {
			var idx existingIndex
			if err := cur.Decode(&idx); err != nil {
				zap.L().Warn("failed to decode existing index",
					zap.String("collection", coll.Name()),
					zap.Error(err))
				continue
			}
			existing[keySig(idx.Key)] = idx
		}
		cur.Close(ctx)
	}

	for _, m := range models {
		var desiredName string
		var desiredUnique *bool
		if m.Options != nil {
			if m.Options.Name != nil {
				desiredName = *m.Options.Name
			}
			if m.Options.Unique != nil {
				desiredUnique = m.Options.Unique
			}
		}
		desiredSig := keySig(m.Keys.(bson.D))
		start := time.Now()

		if ex, ok := existing[desiredSig]; ok {
			if sameBoolPtr(desiredUnique, ex.Unique) {
				// Same keys, same options: reuse whatever name it has.
				continue
			}
			// Options mismatch (e.g. upgrading to unique). Drop & recreate.
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				errs = append(errs, fmt.Sprintf("%s(%s): drop failed: %v", coll.Name(), desiredName, err))
				continue
			}
		}

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			switch {
			case isOptionsConflictErr(err):
				// An equivalent index already exists under another name.
				zap.L().Info("index exists under a different name; leaving as-is",
					zap.String("collection", coll.Name()),
					zap.String("keys", desiredSig))
			case isDuplicateKeyErr(err) && desiredUnique != nil && *desiredUnique:
				errs = append(errs, fmt.Sprintf("%s(%s): cannot create unique index (duplicates present)", coll.Name(), desiredName))
			default:
				errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
			}
			continue
		}

		zap.L().Info("index created",
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("keys", desiredSig),
			zap.Bool("unique", desiredUnique != nil && *desiredUnique),
			zap.String("took", time.Since(start).String()))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func uniqueIndex(name string, keys bson.D) mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name).SetUnique(true),
	}
}

func plainIndex(name string, keys bson.D) mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name),
	}
}

/* -------------------------------------------------------------------------- */
/* Per-collection desired indexes                                             */
/* -------------------------------------------------------------------------- */

func ensureOrganisations(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("organisations"), []mongo.IndexModel{
		// no uniqueness on organisation names; name_ci is for sort/search only
		plainIndex("name_ci_1", bson.D{{Key: "name_ci", Value: 1}}),
	})
}

func ensureDepartments(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("departments"), []mongo.IndexModel{
		uniqueIndex("org_id_1_name_1", bson.D{{Key: "org_id", Value: 1}, {Key: "name", Value: 1}}),
	})
}

func ensureDepTeams(ctx context.Context, db *mongo.Database) error {
	// Teams carry no uniqueness invariant; index is for the
	// (org, department) listing path only.
	return ensureIndexSet(ctx, db.Collection("department_teams"), []mongo.IndexModel{
		plainIndex("org_id_1_dep_id_1", bson.D{{Key: "org_id", Value: 1}, {Key: "dep_id", Value: 1}}),
		plainIndex("dep_id_1", bson.D{{Key: "dep_id", Value: 1}}),
	})
}

func ensureHospLocs(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("hospital_locations"), []mongo.IndexModel{
		plainIndex("org_id_1_name_ci_1", bson.D{{Key: "org_id", Value: 1}, {Key: "name_ci", Value: 1}}),
	})
}

func ensureDepLocAssignments(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("department_location_assignments"), []mongo.IndexModel{
		uniqueIndex("department_id_1_location_id_1",
			bson.D{{Key: "department_id", Value: 1}, {Key: "location_id", Value: 1}}),
	})
}

func ensureTeamLocAssignments(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("department_team_location_assignments"), []mongo.IndexModel{
		uniqueIndex("dep_id_1_team_id_1_location_id_1",
			bson.D{{Key: "dep_id", Value: 1}, {Key: "team_id", Value: 1}, {Key: "location_id", Value: 1}}),
		plainIndex("team_id_1", bson.D{{Key: "team_id", Value: 1}}),
	})
}

func ensureDepModuleAssignments(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("department_module_assignments"), []mongo.IndexModel{
		uniqueIndex("dep_id_1_module_id_1",
			bson.D{{Key: "dep_id", Value: 1}, {Key: "module_id", Value: 1}}),
	})
}

func ensureHospOrgAssignments(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("hospital_organisation_assignments"), []mongo.IndexModel{
		uniqueIndex("hospital_id_1_organisation_id_1",
			bson.D{{Key: "hospital_id", Value: 1}, {Key: "organisation_id", Value: 1}}),
		plainIndex("organisation_id_1", bson.D{{Key: "organisation_id", Value: 1}}),
	})
}

func ensureRotaAssignments(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("rota_assignments"), []mongo.IndexModel{
		plainIndex("week_id_1", bson.D{{Key: "week_id", Value: 1}}),
		plainIndex("user_id_1_week_id_1_day_index_1",
			bson.D{{Key: "user_id", Value: 1}, {Key: "week_id", Value: 1}, {Key: "day_index", Value: 1}}),
	})
}
