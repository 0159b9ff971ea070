package rls

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubQuery_SQL(t *testing.T) {
	tests := []struct {
		name string
		q    *SubQuery
		want string
	}{
		{
			name: "select star",
			q:    From("teams"),
			want: "SELECT * FROM teams",
		},
		{
			name: "alias and columns",
			q:    From("memberships", "m").Select("m.team_id", "m.role"),
			want: "SELECT m.team_id, m.role FROM memberships m",
		},
		{
			name: "where",
			q:    From("memberships").Select("team_id").Where(Column("user_id").IsOwner()),
			want: "SELECT team_id FROM memberships WHERE user_id = auth.uid()",
		},
		{
			name: "joins in order",
			q: From("projects", "p").
				Select("p.id").
				Join("teams", Column("teams.id").Eq(Column("p.team_id"))).
				JoinAs("orgs", Column("o.id").Eq(Column("teams.org_id")), JoinLeft, "o").
				RightJoin("regions", Column("regions.id").Eq(Column("o.region_id"))).
				FullJoin("audits", Column("audits.project_id").Eq(Column("p.id"))).
				Where(Column("o.owner_id").IsOwner()),
			want: "SELECT p.id FROM projects p" +
				" INNER JOIN teams ON teams.id = p.team_id" +
				" LEFT JOIN orgs o ON o.id = teams.org_id" +
				" RIGHT JOIN regions ON regions.id = o.region_id" +
				" FULL JOIN audits ON audits.project_id = p.id" +
				" WHERE o.owner_id = auth.uid()",
		},
		{
			name: "left join helper and empty kind",
			q: From("a").
				LeftJoin("b", Column("b.id").Eq(Column("a.b_id"))).
				JoinAs("c", Column("c.id").Eq(Column("a.c_id")), "", "cc"),
			want: "SELECT * FROM a LEFT JOIN b ON b.id = a.b_id INNER JOIN c cc ON c.id = a.c_id",
		},
		{
			name: "chained where",
			q: From("t").Select("id").
				Where(Column("a").Eq(1).And(Column("b").Gt(2))),
			want: "SELECT id FROM t WHERE (a = 1 AND b > 2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.SQL())
		})
	}
}

func TestSubQuery_BuilderMutatesReceiver(t *testing.T) {
	q := From("t")
	same := q.Select("id").Where(Column("a").Eq(1))

	assert.Same(t, q, same)
	assert.Equal(t, "SELECT id FROM t WHERE a = 1", q.SQL())

	q.Where(Column("b").Eq(2))
	assert.Equal(t, "SELECT id FROM t WHERE b = 2", q.SQL(), "last Where wins")

	q.Select()
	assert.Equal(t, "SELECT * FROM t WHERE b = 2", q.SQL())
}

func TestSubQuery_Nested(t *testing.T) {
	inner := From("memberships").Select("team_id").Where(Column("user_id").IsOwner())
	outer := From("projects").Select("id").Where(Column("team_id").InSubQuery(inner))

	assert.Equal(t,
		"doc_id IN (SELECT id FROM projects WHERE team_id IN (SELECT team_id FROM memberships WHERE user_id = auth.uid()))",
		Column("doc_id").InSubQuery(outer).SQL(),
	)
}
