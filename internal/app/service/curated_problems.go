package service

import "dsaquest/internal/domain/model"

// curatedProblems is the built-in practice set served when the external bank
// is unreachable or has nothing for the requested slice.
func curatedProblems(topicID string, difficulty model.Difficulty) []model.Problem {
	points, _ := model.PointsForDifficulty(difficulty)

	set, ok := curatedSet[topicID][difficulty]
	if !ok {
		return nil
	}
	problems := make([]model.Problem, len(set))
	copy(problems, set)
	for i := range problems {
		problems[i].Points = points
	}
	return problems
}

var curatedSet = map[string]map[model.Difficulty][]model.Problem{
	"arrays": {
		model.DifficultyEasy: {
			{
				ID:           "two-sum",
				Slug:         "two-sum",
				Title:        "Two Sum",
				Difficulty:   model.DifficultyEasy,
				Topic:        "Arrays",
				Description:  "Given an array of integers nums and an integer target, return indices of the two numbers that add up to target.",
				InputFormat:  "First line: n and target\nSecond line: n space-separated integers",
				OutputFormat: "Two space-separated indices",
				Constraints:  "2 ≤ n ≤ 10^4",
				SampleCases: []model.SampleTestCase{
					{Input: "4 9\n2 7 11 15", Output: "0 1", Explanation: "nums[0] + nums[1] = 9"},
				},
				Link: "https://leetcode.com/problems/two-sum/",
				Tags: []string{"array", "hash-table"},
			},
		},
		model.DifficultyMedium: {
			{
				ID:           "max-subarray",
				Slug:         "max-subarray",
				Title:        "Maximum Subarray Sum",
				Difficulty:   model.DifficultyMedium,
				Topic:        "Arrays",
				Description:  "Find the contiguous subarray with the largest sum (Kadane's Algorithm).",
				InputFormat:  "First line: n\nSecond line: n space-separated integers",
				OutputFormat: "Single integer (maximum sum)",
				Constraints:  "1 ≤ n ≤ 10^5",
				SampleCases: []model.SampleTestCase{
					{Input: "9\n-2 1 -3 4 -1 2 1 -5 4", Output: "6", Explanation: "Subarray [4,-1,2,1] = 6"},
				},
				Link: "https://leetcode.com/problems/maximum-subarray/",
				Tags: []string{"array", "dynamic-programming"},
			},
		},
	},
	"strings": {
		model.DifficultyEasy: {
			{
				ID:           "reverse-string",
				Slug:         "reverse-string",
				Title:        "Reverse String",
				Difficulty:   model.DifficultyEasy,
				Topic:        "Strings",
				Description:  "Reverse a given string.",
				InputFormat:  "Single line containing a string",
				OutputFormat: "Reversed string",
				Constraints:  "1 ≤ length ≤ 10^5",
				SampleCases: []model.SampleTestCase{
					{Input: "hello", Output: "olleh", Explanation: "String reversed"},
				},
				Link: "https://leetcode.com/problems/reverse-string/",
				Tags: []string{"string", "two-pointers"},
			},
		},
	},
	"linked-list": {
		model.DifficultyEasy: {
			{
				ID:           "reverse-list",
				Slug:         "reverse-list",
				Title:        "Reverse Linked List",
				Difficulty:   model.DifficultyEasy,
				Topic:        "Linked List",
				Description:  "Reverse a singly linked list (simulated with array).",
				InputFormat:  "First line: n\nSecond line: n space-separated integers",
				OutputFormat: "Reversed list as space-separated integers",
				Constraints:  "0 ≤ n ≤ 5000",
				SampleCases: []model.SampleTestCase{
					{Input: "5\n1 2 3 4 5", Output: "5 4 3 2 1", Explanation: "List reversed"},
				},
				Link: "https://leetcode.com/problems/reverse-linked-list/",
				Tags: []string{"linked-list"},
			},
		},
		model.DifficultyMedium: {
			{
				ID:           "middle-node",
				Slug:         "middle-node",
				Title:        "Middle of Linked List",
				Difficulty:   model.DifficultyMedium,
				Topic:        "Linked List",
				Description:  "Find the middle node of a linked list.",
				InputFormat:  "First line: n\nSecond line: n space-separated integers",
				OutputFormat: "Value of middle node",
				Constraints:  "1 ≤ n ≤ 100",
				SampleCases: []model.SampleTestCase{
					{Input: "5\n1 2 3 4 5", Output: "3", Explanation: "Middle element"},
				},
				Link: "https://leetcode.com/problems/middle-of-the-linked-list/",
				Tags: []string{"linked-list", "two-pointers"},
			},
		},
	},
}
