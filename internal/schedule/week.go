package schedule

import "github.com/alexanderramin/studyboard/internal/domain"

var week = []domain.Day{
	{
		Label: "Monday (OFF - Heavy Lifting)",
		Goal:  "Master Tuesday's midterms + High-Volume AMC 8 Math.",
		Tasks: []domain.Task{
			{Time: "8:00 AM", Duration: "75m", Title: "AMC 8: Full Practice", Type: "amc", Desc: "40 min test + 35 min review. Analyze every mistake."},
			{Time: "9:30 AM", Duration: "90m", Title: "Midterm: Subject 1", Type: "midterm", Desc: "60 min concepts / 30 min practice problems."},
			{Time: "11:20 AM", Duration: "60m", Title: "HS: Reading Comp", Type: "hs", Desc: "3 difficult passages. Focus on evidence-based answers."},
			{Time: "1:20 PM", Duration: "90m", Title: "Midterm: Subject 2", Type: "midterm", Desc: "90-minute deep work block."},
			{Time: "3:10 PM", Duration: "60m", Title: "AMC 8: Speed Drill", Type: "amc", Desc: "Q1-15 in 20 mins. Aim for 100% accuracy."},
			{Time: "4:10 PM", Duration: "60m", Title: "HS: Grammar/Vocab", Type: "hs", Desc: "Intensive drills on high-frequency topics."},
		},
	},
	{
		Label: "Tuesday (Midterms Day 1)",
		Goal:  "Execute Midterms + Prepare for Wednesday.",
		Tasks: []domain.Task{
			{Time: "2:00 PM", Duration: "90m", Title: "Midterm: Wed Subj 1", Type: "midterm", Desc: "90-minute focus block."},
			{Time: "3:45 PM", Duration: "90m", Title: "Midterm: Wed Subj 2", Type: "midterm", Desc: "90-minute focus block."},
			{Time: "6:15 PM", Duration: "60m", Title: "AMC 8: Hardest 5", Type: "amc", Desc: "Solve Q21-25 from 3 past papers. Focus on logic."},
			{Time: "7:30 PM", Duration: "60m", Title: "HS: Mixed Practice", Type: "hs", Desc: "30m Vocab / 30m Grammar."},
		},
	},
	{
		Label: "Wednesday (Midterms Day 2)",
		Goal:  "Execute Midterms + Prepare for Thursday.",
		Tasks: []domain.Task{
			{Time: "2:00 PM", Duration: "90m", Title: "Midterm: Thu Subj 1", Type: "midterm", Desc: "Focus on weakest units for Thursday."},
			{Time: "3:45 PM", Duration: "90m", Title: "Midterm: Thu Subj 2", Type: "midterm", Desc: "Final midterm deep-dive."},
			{Time: "6:15 PM", Duration: "60m", Title: "AMC 8: Mistake Audit", Type: "amc", Desc: "Create 5 problems based on past 'silly' errors."},
			{Time: "7:30 PM", Duration: "60m", Title: "HS: Speed Run", Type: "hs", Desc: "Read 2 passages faster than comfortable."},
		},
	},
	{
		Label: "Thursday (Midterms Done!)",
		Goal:  "Pivot focus to HS Admissions (Sat) and AMC 8.",
		Tasks: []domain.Task{
			{Time: "1:30 PM", Duration: "90m", Title: "HS: Simulated Section", Type: "hs", Desc: "Continuous practice to build mental fatigue stamina."},
			{Time: "3:30 PM", Duration: "90m", Title: "AMC 8: Full Mock", Type: "amc", Desc: "Timed 2022/2023 paper + 30m analysis."},
			{Time: "6:00 PM", Duration: "60m", Title: "HS: Vocab Cram", Type: "hs", Desc: "Review high-frequency word lists."},
			{Time: "7:00 PM", Duration: "60m", Title: "AMC 8: Geometry Special", Type: "amc", Desc: "10 Geometry problems. Watch for volume/area traps."},
		},
	},
	{
		Label: "Friday (Pre-Game Day)",
		Goal:  "Light & Confident. No burnout.",
		Tasks: []domain.Task{
			{Time: "8:30 AM", Duration: "120m", Title: "HS: Final Tune-Up", Type: "hs", Desc: "Review rules/strategies. Build confidence."},
			{Time: "10:45 AM", Duration: "90m", Title: "AMC 8: Counting/Prob", Type: "amc", Desc: "10-15 moderate difficulty problems."},
			{Time: "1:15 PM", Duration: "90m", Title: "AMC 8: Visualization", Type: "amc", Desc: "Redo a successful test. Aim for 25/25."},
			{Time: "2:45 PM", Duration: "60m", Title: "HS: Vocab Review", Type: "hs", Desc: "Final list sweep. Relax afterward."},
		},
	},
}
