package university

import (
	"strings"
	"testing"

	"github.com/indiansabroad/indians-abroad-api/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB builds SQL without touching a database
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=test dbname=test"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("failed to open dry-run DB: %v", err)
	}
	return db
}

func TestListQueryExcludesInactive(t *testing.T) {
	db := newDryRunDB(t)

	tx := listQuery(db, "").Find(&[]model.University{})
	if tx.Error != nil {
		t.Fatalf("query build failed: %v", tx.Error)
	}

	sql := tx.Statement.SQL.String()
	if !strings.Contains(sql, "is_active = $") {
		t.Errorf("public listing must filter on is_active, got: %s", sql)
	}
	if len(tx.Statement.Vars) == 0 || tx.Statement.Vars[0] != true {
		t.Errorf("is_active must be bound to true, vars: %v", tx.Statement.Vars)
	}
	if strings.Contains(sql, "country = $") {
		t.Errorf("empty country filter should add no clause: %s", sql)
	}
}

func TestListQueryCountryFilter(t *testing.T) {
	db := newDryRunDB(t)

	tx := listQuery(db, "Canada").Find(&[]model.University{})
	sql := tx.Statement.SQL.String()
	if !strings.Contains(sql, "country = $") {
		t.Errorf("missing country clause: %s", sql)
	}

	foundCountry := false
	for _, v := range tx.Statement.Vars {
		if v == "Canada" {
			foundCountry = true
		}
	}
	if !foundCountry {
		t.Errorf("country value not bound, vars: %v", tx.Statement.Vars)
	}
}

func TestCountriesQueryDistinctOverActiveRows(t *testing.T) {
	db := newDryRunDB(t)

	var countries []string
	tx := countriesQuery(db).Pluck("country", &countries)
	if tx.Error != nil {
		t.Fatalf("query build failed: %v", tx.Error)
	}

	sql := tx.Statement.SQL.String()
	if !strings.Contains(sql, "DISTINCT") {
		t.Errorf("countries query must be distinct: %s", sql)
	}
	if !strings.Contains(sql, "is_active = $") {
		t.Errorf("countries query must exclude inactive rows: %s", sql)
	}
	if !strings.Contains(sql, "country ASC") {
		t.Errorf("countries query must be sorted: %s", sql)
	}
}
