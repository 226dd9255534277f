package repository

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"gorm.io/gorm/schema"

	"github.com/jakpabi/churchbase/internal/domain"
)

// Relation describes one declared relationship of an entity, resolved from
// the GORM schema at startup.
type Relation struct {
	// Name is the snake_case relation name callers use (e.g. "members",
	// "transactions", "role").
	Name string
	Kind schema.RelationshipType
	// Target describes the related entity. Its own relations are not
	// populated; dynamic reads only ever traverse one hop.
	Target *Descriptor
	// OwnKey/TargetKey are the join columns on this entity's table and the
	// target's table. For many-to-many they are the two primary keys and
	// the join table columns below apply.
	OwnKey        string
	TargetKey     string
	JoinTable     string
	JoinOwnKey    string
	JoinTargetKey string
}

// Descriptor is the field and relation registry for one entity type, parsed
// once from its GORM schema. Every dynamic identifier (filter keys, sort
// fields, projections, relation names) is checked against it before reaching
// a query; identifiers in SQL come only from here, values only through bound
// placeholders.
type Descriptor struct {
	// Name is a short human-readable entity name used in error messages.
	Name  string
	Table string

	columns       map[string]struct{}
	stringColumns []string
	relations     map[string]Relation
}

// HasColumn reports whether name is a real database column of the entity.
func (d *Descriptor) HasColumn(name string) bool {
	_, ok := d.columns[name]
	return ok
}

// Columns returns the entity's database column names, sorted.
func (d *Descriptor) Columns() []string {
	cols := make([]string, 0, len(d.columns))
	for c := range d.columns {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

// StringColumns returns the text-typed columns, used for free-text search.
func (d *Descriptor) StringColumns() []string {
	return d.stringColumns
}

// Relation looks up a declared relationship by its snake_case name.
func (d *Descriptor) Relation(name string) (Relation, bool) {
	rel, ok := d.relations[name]
	return rel, ok
}

var (
	namer = schema.NamingStrategy{}

	schemaCache     sync.Map // parse cache shared with gorm
	descriptorCache sync.Map // reflect.Type -> *Descriptor
)

// descriptorFor parses and caches the registry for entity type T.
func descriptorFor[T domain.Entity]() (*Descriptor, error) {
	var zero T
	t := reflect.TypeOf(zero)
	if cached, ok := descriptorCache.Load(t); ok {
		return cached.(*Descriptor), nil
	}

	sch, err := schema.Parse(zero, &schemaCache, namer)
	if err != nil {
		return nil, fmt.Errorf("parse schema for %T: %w", zero, err)
	}
	desc, err := newDescriptor(sch, true)
	if err != nil {
		return nil, err
	}
	descriptorCache.Store(t, desc)
	return desc, nil
}

func newDescriptor(sch *schema.Schema, withRelations bool) (*Descriptor, error) {
	desc := &Descriptor{
		Name:      namer.ColumnName("", sch.Name),
		Table:     sch.Table,
		columns:   make(map[string]struct{}, len(sch.Fields)),
		relations: make(map[string]Relation),
	}
	for _, f := range sch.Fields {
		if f.DBName == "" {
			continue
		}
		desc.columns[f.DBName] = struct{}{}
		ft := f.FieldType
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.String {
			desc.stringColumns = append(desc.stringColumns, f.DBName)
		}
	}
	sort.Strings(desc.stringColumns)

	if !withRelations {
		return desc, nil
	}
	for _, rel := range sch.Relationships.Relations {
		r, err := newRelation(rel)
		if err != nil {
			return nil, err
		}
		desc.relations[r.Name] = r
	}
	return desc, nil
}

func newRelation(rel *schema.Relationship) (Relation, error) {
	target, err := newDescriptor(rel.FieldSchema, false)
	if err != nil {
		return Relation{}, err
	}
	r := Relation{
		Name:   namer.ColumnName("", rel.Field.Name),
		Kind:   rel.Type,
		Target: target,
	}
	switch rel.Type {
	case schema.BelongsTo:
		ref := rel.References[0]
		r.OwnKey = ref.ForeignKey.DBName
		r.TargetKey = ref.PrimaryKey.DBName
	case schema.HasOne, schema.HasMany:
		ref := rel.References[0]
		r.OwnKey = ref.PrimaryKey.DBName
		r.TargetKey = ref.ForeignKey.DBName
	case schema.Many2Many:
		r.JoinTable = rel.JoinTable.Table
		for _, ref := range rel.References {
			if ref.OwnPrimaryKey {
				r.OwnKey = ref.PrimaryKey.DBName
				r.JoinOwnKey = ref.ForeignKey.DBName
			} else {
				r.TargetKey = ref.PrimaryKey.DBName
				r.JoinTargetKey = ref.ForeignKey.DBName
			}
		}
	default:
		return Relation{}, fmt.Errorf("unsupported relationship type %q on %s.%s", rel.Type, rel.Schema.Name, rel.Field.Name)
	}
	return r, nil
}
