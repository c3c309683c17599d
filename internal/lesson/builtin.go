package lesson

import "github.com/verte-zerg/pytype/internal/model"

// Builtin returns the lessons shipped with the binary.
func Builtin() []model.Lesson {
	return []model.Lesson{
		{
			Title:    "Data Structures Deep Dive",
			Subtitle: "Multi-paradigm Python design patterns & data fluency.",
			Level:    "Advanced",
			Focus:    "Data structures",
			Objectives: []string{
				"Type nested comprehensions with zero hesitation.",
				"Practice tuple unpacking and slicing for fast recall.",
				"Reinforce dictionary pipelines with chained operations.",
			},
			Snippet: `from collections import defaultdict

orders = defaultdict(list)
for user, total in transactions:
    orders[user].append(total)

high_value = {
    user: sum(totals)
    for user, totals in orders.items()
    if sum(totals) >= 2500
}`,
		},
		{
			Title:    "Async Execution Patterns",
			Subtitle: "Master concurrency syntax and async task choreography.",
			Level:    "Advanced",
			Focus:    "Async IO",
			Objectives: []string{
				"Type async/await blocks with natural cadence.",
				"Practice gather patterns with cancellation awareness.",
				"Reinforce task group creation with context managers.",
			},
			Snippet: `import asyncio

async def fetch_data(client, url):
    async with client.get(url) as response:
        return await response.json()

async def orchestrate(client, endpoints):
    tasks = [fetch_data(client, url) for url in endpoints]
    results = await asyncio.gather(*tasks)
    return {item["id"]: item for item in results}`,
		},
		{
			Title:    "Testing & Quality Assurance",
			Subtitle: "Type robust tests and validation pipelines.",
			Level:    "Advanced",
			Focus:    "Testing",
			Objectives: []string{
				"Reinforce assertion grammar with descriptive failures.",
				"Type fixtures and parametrization patterns with ease.",
				"Practice patching and dependency injection flows.",
			},
			Snippet: `import pytest

@pytest.mark.parametrize("score,expected", [(91, "A"), (78, "C")])
def test_grade_mapping(score, expected):
    result = map_grade(score)
    assert result == expected

class TestNotifier:
    def test_notify_success(self, notifier, caplog):
        notifier.notify("Ready")
        assert "Ready" in caplog.text`,
		},
		{
			Title:    "Performance Profiling",
			Subtitle: "Type optimization tooling and profiling flows.",
			Level:    "Advanced",
			Focus:    "Performance",
			Objectives: []string{
				"Memorize context managers for timing blocks.",
				"Practice caching decorators and metrics logging.",
				"Type memory profiling loops with accuracy.",
			},
			Snippet: `from functools import lru_cache
from time import perf_counter

@lru_cache(maxsize=128)
def compute_score(record_id):
    return sum(i * i for i in range(record_id))

start = perf_counter()
for record_id in range(4000, 4010):
    compute_score(record_id)

print(f"Elapsed: {perf_counter() - start:.2f}s")`,
		},
	}
}
