package model

import "strings"

// Topic describes one practice category. The list is fixed at build time;
// CatalogSlug is the category identifier understood by the external problem bank.
type Topic struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	CatalogSlug string `json:"-"`
}

var Topics = []Topic{
	{ID: "arrays", Name: "Arrays", Description: "Master array manipulation and techniques", Icon: "📊", Color: "from-blue-500 to-cyan-500", CatalogSlug: "array"},
	{ID: "strings", Name: "Strings", Description: "String manipulation and pattern matching", Icon: "📝", Color: "from-green-500 to-emerald-500", CatalogSlug: "string"},
	{ID: "linked-list", Name: "Linked List", Description: "Linear data structure operations", Icon: "🔗", Color: "from-purple-500 to-pink-500", CatalogSlug: "linked-list"},
	{ID: "trees", Name: "Trees", Description: "Hierarchical data structure problems", Icon: "🌲", Color: "from-orange-500 to-red-500", CatalogSlug: "tree"},
	{ID: "graphs", Name: "Graphs", Description: "Graph traversal and algorithms", Icon: "🕸️", Color: "from-indigo-500 to-purple-500", CatalogSlug: "graph"},
	{ID: "dp", Name: "Dynamic Programming", Description: "Optimization problems", Icon: "🎯", Color: "from-yellow-500 to-orange-500", CatalogSlug: "dynamic-programming"},
	{ID: "greedy", Name: "Greedy", Description: "Greedy algorithm problems", Icon: "💰", Color: "from-pink-500 to-rose-500", CatalogSlug: "greedy"},
	{ID: "recursion", Name: "Recursion", Description: "Recursive problem solving", Icon: "🔄", Color: "from-teal-500 to-cyan-500", CatalogSlug: "recursion"},
	{ID: "stack-queue", Name: "Stack / Queue", Description: "Linear data structures", Icon: "📚", Color: "from-violet-500 to-purple-500", CatalogSlug: "stack"},
}

// FindTopic matches by id or (case-insensitively) by name.
func FindTopic(idOrName string) (Topic, bool) {
	for _, t := range Topics {
		if t.ID == idOrName || strings.EqualFold(t.Name, idOrName) {
			return t, true
		}
	}
	return Topic{}, false
}
