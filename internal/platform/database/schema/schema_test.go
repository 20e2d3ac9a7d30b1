// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package schema

import (
	"fmt"
	"os"
	"reflect"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

// Every identifier declared here must exist in the initial migration,
// otherwise the first query touching the missing column fails at runtime
// with SQLSTATE 42703 long after the migration ran cleanly.
func TestSchemaColumnsExistInInitialMigration(t *testing.T) {
	ddl, err := os.ReadFile("../../../../data/migrations/000001_init_schema.up.sql")
	require.NoError(t, err)

	definitions := []any{
		RefCategory, RefTag, RefLanguage, RefMaterial, RefTechnique, RefPublisher,
		GeoWilaya, GeoDaira, GeoCommune, GeoLocality,
		GeoPlace, GeoPlaceDetail, GeoHeritageFeature, GeoPlaceMedia,
		CorePerson, CoreWork,
		CoreBook, CoreFilm, CoreAlbum, CoreArticle, CoreSciArticle, CoreCraft, CoreArtPiece,
		WorkCategory, WorkTag, WorkPublisher, Contribution,
		CoreEvent, SocialComment,
	}

	for _, definition := range definitions {
		value := reflect.ValueOf(definition)
		structType := value.Type()

		table := value.FieldByName("Table").String()
		require.NotEmpty(t, table, "%s has no Table name", structType.Name())

		t.Run(table, func(t *testing.T) {
			blockPattern := regexp.MustCompile(`(?is)CREATE TABLE ` + regexp.QuoteMeta(table) + `\s*\((.*?)\);`)
			block := blockPattern.FindSubmatch(ddl)
			require.NotNil(t, block, "no CREATE TABLE statement for %s", table)

			for index := 0; index < structType.NumField(); index++ {
				field := structType.Field(index)
				if field.Name == "Table" {
					continue
				}

				column := value.Field(index).String()
				require.NotEmpty(t, column, "%s.%s is empty", structType.Name(), field.Name)

				columnPattern := regexp.MustCompile(fmt.Sprintf(`(?m)^\s*%s\s`, regexp.QuoteMeta(column)))
				require.True(t, columnPattern.Match(block[1]),
					"column %s.%s is referenced by queries but never created", table, column)
			}
		})
	}
}
